package get_dates

import (
	"time"
)

type BookingStore interface {
	ListConfirmedDates() []time.Time
	ListPendingDates() []time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
