package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings"
)

type BookingStore interface {
	Cancel(ctx context.Context, id string) bookings.TransitionResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
