package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Create(ctx context.Context, req *models.CreateBookingRequest) (*domain.Booking, error)
	ListConfirmedDates() []time.Time
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	Get(id string) (domain.Service, bool)
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
