package events

import "context"

// Handler обработчик событий (уведомления, брокер, метрики)
type Handler interface {
	Handle(ctx context.Context, event BookingEvent) error
}

// HandlerFunc адаптер функции к Handler
type HandlerFunc func(ctx context.Context, event BookingEvent) error

// Handle вызывает f(ctx, event)
func (f HandlerFunc) Handle(ctx context.Context, event BookingEvent) error {
	return f(ctx, event)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
