package get_availability

import "time"

// DayStatus статус дня в календаре
type DayStatus string

const (
	DayBooked    DayStatus = "booked"    // есть подтверждённое бронирование
	DayPending   DayStatus = "pending"   // есть заявка, ожидающая подтверждения
	DayAvailable DayStatus = "available" // свободный день
	DayPast      DayStatus = "past"      // день уже прошёл
)

// MonthRequest запрос календаря на месяц
type MonthRequest struct {
	Year  int
	Month time.Month
}

// MonthResponse календарь месяца
type MonthResponse struct {
	Year    int
	Month   time.Month
	Days    []Day
	Summary Summary
}

// Day один день календаря
type Day struct {
	Date       time.Time
	Status     DayStatus
	Selectable bool // можно выбрать для новой заявки
}

// Summary счетчики дней за месяц
type Summary struct {
	Available int // доступные дни без заявок в ожидании
	Booked    int
	Pending   int
}

// DateRequest запрос проверки одной даты
type DateRequest struct {
	Date time.Time
}

// DateResponse доступность одной даты
type DateResponse struct {
	Date      time.Time
	Bookable  bool
	Confirmed bool // на дату есть подтверждённое бронирование
	Pending   bool // на дату есть заявка в ожидании
}
