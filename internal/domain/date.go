package domain

import "time"

// DateOnly обнуляет время, оставляя календарный день в той же локации
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
// Сравниваются только год, месяц и день, время и часовой пояс игнорируются
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dayUTC переносит календарный день в UTC, чтобы сравнивать дни из разных локаций
func dayUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsDayBefore проверяет, что календарный день date1 раньше дня date2
func IsDayBefore(date1, date2 time.Time) bool {
	return dayUTC(date1).Before(dayUTC(date2))
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return IsDayBefore(date, now)
}

// ContainsDay проверяет, есть ли в списке дата с тем же календарным днём
func ContainsDay(dates []time.Time, date time.Time) bool {
	for _, d := range dates {
		if IsSameDay(d, date) {
			return true
		}
	}
	return false
}

// IsBookable дата доступна для новой заявки, если она не в прошлом
// и на неё нет ни одного подтверждённого бронирования.
// Заявки в статусе pending дату не блокируют.
func IsBookable(date, now time.Time, confirmedDates []time.Time) bool {
	if IsDateInPast(date, now) {
		return false
	}
	return !ContainsDay(confirmedDates, date)
}
