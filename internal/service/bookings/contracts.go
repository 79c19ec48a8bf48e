package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/events"
)

// SnapshotRepository порт хранения полного набора бронирований
// Save всегда получает весь набор, а не разницу
type SnapshotRepository interface {
	Load(ctx context.Context) ([]*domain.Booking, error)
	Save(ctx context.Context, bookings []*domain.Booking) error
}

// EventPublisher публикатор доменных событий (доставка асинхронная)
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// IDGenerator генератор идентификаторов бронирований
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генерирует случайные UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID в строковом виде
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
