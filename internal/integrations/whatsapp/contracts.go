package whatsapp

import (
	"context"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// Sender отправка сообщения через шлюз WhatsApp
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ServiceLookup поиск услуги в каталоге
type ServiceLookup interface {
	Get(id string) (domain.Service, bool)
}

// Recorder учет результатов отправки (метрики)
type Recorder interface {
	ObserveNotification(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
