package get_booking_by_date

import (
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

type BookingStore interface {
	FindByDate(date time.Time) (*domain.Booking, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
