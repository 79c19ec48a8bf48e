package redis

import (
	"context"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// DefaultKey ключ, под которым хранится снимок бронирований
const DefaultKey = "cleanpro-bookings"

// Client подмножество команд redis, которое использует репозиторий
// Реализуется *redis.Client
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}
