package list_bookings

import (
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

type BookingStore interface {
	List(filter domain.BookingsFilter) []*domain.Booking
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
