package events

import (
	"context"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// EventRecorder метрики событий и статусов
type EventRecorder interface {
	ObserveEvent(eventType string)
	SetBookingCounts(pending, confirmed, cancelled int)
}

// StatsSource источник актуальной статистики
type StatsSource interface {
	Stats() domain.Stats
}

// NewMetricsHandler считает события и обновляет gauge статусов после каждого события
func NewMetricsHandler(recorder EventRecorder, stats StatsSource) Handler {
	return HandlerFunc(func(_ context.Context, event BookingEvent) error {
		recorder.ObserveEvent(string(event.Type))

		s := stats.Stats()
		recorder.SetBookingCounts(s.Pending, s.Confirmed, s.Cancelled)
		return nil
	})
}
