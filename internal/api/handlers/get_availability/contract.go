package get_availability

import (
	"context"

	getAvailability "github.com/m04kA/SMC-BookingAvailability/internal/usecase/get_availability"
)

type AvailabilityUseCase interface {
	GetMonth(ctx context.Context, req *getAvailability.MonthRequest) (*getAvailability.MonthResponse, error)
	CheckDate(ctx context.Context, req *getAvailability.DateRequest) (*getAvailability.DateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
