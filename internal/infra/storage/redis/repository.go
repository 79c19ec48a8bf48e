package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/snapshot"
)

// Repository хранит полный набор бронирований в одном ключе redis
type Repository struct {
	client Client
	key    string
}

// NewRepository создает репозиторий, пустой key заменяется на DefaultKey
func NewRepository(client Client, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{client: client, key: key}
}

// Load читает снимок, отсутствующий ключ означает пустой набор
func (r *Repository) Load(ctx context.Context) ([]*domain.Booking, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrRead, r.key, err)
	}

	return snapshot.Decode(data)
}

// Save перезаписывает ключ полным набором без TTL
func (r *Repository) Save(ctx context.Context, bookings []*domain.Booking) error {
	data, err := snapshot.Encode(bookings)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrWrite, r.key, err)
	}
	return nil
}
