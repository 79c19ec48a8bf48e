package whatsapp

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/events"
)

// DefaultDestination номер администратора по умолчанию
const DefaultDestination = "555381556144"

// Notifier отправляет администратору заявки через WhatsApp
// Реализует events.Handler
type Notifier struct {
	sender      Sender
	destination string
	catalog     ServiceLookup
	recorder    Recorder
	log         Logger
}

// NewNotifier создает обработчик уведомлений
// sender может быть nil: тогда вместо отправки в лог пишется ссылка wa.me
func NewNotifier(sender Sender, destination string, catalog ServiceLookup, recorder Recorder, log Logger) *Notifier {
	if destination == "" {
		destination = DefaultDestination
	}
	return &Notifier{
		sender:      sender,
		destination: Digits(destination),
		catalog:     catalog,
		recorder:    recorder,
		log:         log,
	}
}

// Handle обрабатывает событие жизненного цикла заявки
func (n *Notifier) Handle(ctx context.Context, event events.BookingEvent) error {
	switch event.Type {
	case events.TypeBookingCreated:
		return n.notifyCreated(ctx, event)
	case events.TypeBookingConfirmed:
		return n.notifyConfirmed(ctx, event)
	default:
		return nil
	}
}

func (n *Notifier) notifyCreated(ctx context.Context, event events.BookingEvent) error {
	b := &event.Booking

	service, ok := n.catalog.Get(b.ServiceID)
	if !ok {
		n.log.Warn("Service %s for booking id=%s not found in catalog, sending without price", b.ServiceID, b.ID)
	}

	return n.deliver(ctx, b, n.destination, FormatBookingRequest(b, service))
}

// notifyConfirmed сообщает клиенту о подтверждении на его номер
func (n *Notifier) notifyConfirmed(ctx context.Context, event events.BookingEvent) error {
	b := &event.Booking

	n.log.Info("Booking #%s confirmed for %s, client %s",
		b.ShortID(), b.Date.Format(domain.DateFormat), b.ClientName)

	return n.deliver(ctx, b, Digits(b.ClientPhone), FormatConfirmation(b))
}

// deliver отправляет текст через шлюз или, без шлюза, пишет в лог ссылку wa.me
func (n *Notifier) deliver(ctx context.Context, b *domain.Booking, to, text string) error {
	if n.sender == nil {
		link, err := BuildLink(to, text)
		if err != nil {
			n.observe(ResultFailed)
			return err
		}
		n.observe(ResultLink)
		n.log.Info("WhatsApp gateway is not configured, booking #%s link: %s", b.ShortID(), link)
		return nil
	}

	if to == "" {
		n.observe(ResultFailed)
		return fmt.Errorf("%w: booking id=%s has no phone digits", ErrInvalidNumber, b.ID)
	}

	if err := n.sender.Send(ctx, Message{To: to, Text: text}); err != nil {
		n.observe(ResultFailed)
		return fmt.Errorf("notify booking id=%s: %w", b.ID, err)
	}

	n.observe(ResultSent)
	return nil
}

func (n *Notifier) observe(result string) {
	if n.recorder != nil {
		n.recorder.ObserveNotification(result)
	}
}
