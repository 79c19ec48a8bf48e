package events

import (
	"context"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize размер очереди событий по умолчанию
const DefaultQueueSize = 256

type subscription struct {
	name    string
	handler Handler
}

// Dispatcher асинхронно доставляет доменные события обработчикам.
// Публикация не блокирует вызывающего: при переполнении очереди событие отбрасывается.
type Dispatcher struct {
	queue    chan BookingEvent
	handlers []subscription
	logger   Logger

	mu      sync.RWMutex
	closed  bool
	started atomic.Bool
	done    chan struct{}
}

// NewDispatcher создает новый диспетчер событий
func NewDispatcher(queueSize int, logger Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		queue:  make(chan BookingEvent, queueSize),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Subscribe регистрирует обработчик. Вызывать до Start
func (d *Dispatcher) Subscribe(name string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, subscription{name: name, handler: handler})
}

// Publish ставит событие в очередь без ожидания доставки
func (d *Dispatcher) Publish(_ context.Context, event BookingEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrClosed
	}

	select {
	case d.queue <- event:
		return nil
	default:
		d.logger.Warn("Dispatcher: queue is full, dropping event %s for booking id=%s", event.Type, event.Booking.ID)
		return ErrQueueFull
	}
}

// Start запускает фоновую обработку очереди до вызова Close
func (d *Dispatcher) Start(ctx context.Context) {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	for event := range d.queue {
		d.deliver(ctx, event)
	}
}

// Close останавливает приём событий и дожидается обработки оставшихся в очереди
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	if d.started.Load() {
		<-d.done
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event BookingEvent) {
	d.mu.RLock()
	handlers := d.handlers
	d.mu.RUnlock()

	for _, sub := range handlers {
		if err := sub.handler.Handle(ctx, event); err != nil {
			d.logger.Error("Dispatcher: handler %s failed on %s for booking id=%s: %v",
				sub.name, event.Type, event.Booking.ID, err)
		}
	}
}
