package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a cleaning service request
type Booking struct {
	ID   string
	Date time.Time // только календарный день, время не используется

	// Denormalized data from the service catalog
	ServiceID   string
	ServiceName string

	ClientName    string
	ClientPhone   string
	ClientEmail   *string
	ClientAddress string
	Notes         *string

	Status       BookingStatus
	WhatsappSent bool

	CreatedAt   time.Time
	ConfirmedAt *time.Time // выставляется один раз при подтверждении и больше не сбрасывается
}

// IsPending returns true if the booking is still awaiting a decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// IsConfirmed returns true if the booking occupies its date
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been refused or cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeConfirmed returns true if the booking can move to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCancelled returns true if the booking can move to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending
}

// ShortID возвращает короткий фрагмент ID для сообщений (последние 6 символов)
func (b *Booking) ShortID() string {
	if len(b.ID) <= ShortIDLength {
		return b.ID
	}
	return b.ID[len(b.ID)-ShortIDLength:]
}

// Clone возвращает независимую копию бронирования
// Хранилище отдаёт наружу только копии, поэтому дата и статус не могут быть изменены в обход переходов
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}

	c := *b
	if b.ClientEmail != nil {
		email := *b.ClientEmail
		c.ClientEmail = &email
	}
	if b.Notes != nil {
		notes := *b.Notes
		c.Notes = &notes
	}
	if b.ConfirmedAt != nil {
		confirmedAt := *b.ConfirmedAt
		c.ConfirmedAt = &confirmedAt
	}
	return &c
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Status    *BookingStatus // Фильтр по статусу (опционально)
	StartDate *time.Time     // Начало периода включительно (опционально)
	EndDate   *time.Time     // Конец периода включительно (опционально)
}

// Matches проверяет, подходит ли бронирование под фильтр
func (f BookingsFilter) Matches(b *Booking) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.StartDate != nil && IsDayBefore(b.Date, *f.StartDate) {
		return false
	}
	if f.EndDate != nil && IsDayBefore(*f.EndDate, b.Date) {
		return false
	}
	return true
}

// Stats агрегированные счётчики по набору бронирований
type Stats struct {
	Total     int
	Confirmed int
	Pending   int
	Cancelled int
}
