package events

import (
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// Type тип доменного события (используется и как routing key)
type Type string

const (
	TypeBookingCreated   Type = "booking.created"
	TypeBookingConfirmed Type = "booking.confirmed"
	TypeBookingCancelled Type = "booking.cancelled"
)

// BookingEvent событие жизненного цикла бронирования
type BookingEvent struct {
	Type       Type
	Booking    domain.Booking
	OccurredAt time.Time
}

// NewBookingEvent создает событие с копией бронирования
func NewBookingEvent(t Type, b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:       t,
		Booking:    *b.Clone(),
		OccurredAt: at,
	}
}

// Payload модель события для внешних брокеров
type Payload struct {
	Type        string  `json:"type"`
	BookingID   string  `json:"booking_id"`
	Date        string  `json:"date"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	Status      string  `json:"status"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
	OccurredAt  string  `json:"occurred_at"`
}

// ToPayload конвертирует событие в сериализуемую модель
func (e BookingEvent) ToPayload() Payload {
	p := Payload{
		Type:        string(e.Type),
		BookingID:   e.Booking.ID,
		Date:        e.Booking.Date.Format(domain.DateFormat),
		ServiceID:   e.Booking.ServiceID,
		ServiceName: e.Booking.ServiceName,
		ClientName:  e.Booking.ClientName,
		ClientPhone: e.Booking.ClientPhone,
		Status:      string(e.Booking.Status),
		OccurredAt:  e.OccurredAt.Format(time.RFC3339),
	}
	if e.Booking.ConfirmedAt != nil {
		confirmedAt := e.Booking.ConfirmedAt.Format(time.RFC3339)
		p.ConfirmedAt = &confirmedAt
	}
	return p
}
