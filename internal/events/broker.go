package events

import (
	"context"
	"fmt"
)

// JSONPublisher публикатор сообщений во внешний брокер (см. pkg/mq)
type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// NewBrokerHandler пересылает события в брокер, routing key совпадает с типом события
func NewBrokerHandler(publisher JSONPublisher) Handler {
	return HandlerFunc(func(ctx context.Context, event BookingEvent) error {
		if err := publisher.PublishJSON(ctx, string(event.Type), event.ToPayload()); err != nil {
			return fmt.Errorf("publish %s: %w", event.Type, err)
		}
		return nil
	})
}
