package get_stats

import (
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

type BookingStore interface {
	Stats() domain.Stats
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
