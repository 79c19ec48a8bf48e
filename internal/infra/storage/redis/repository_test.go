package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/snapshot"
)

type fakeClient struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{values: make(map[string]string)}
}

func (c *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if c.getErr != nil {
		return goredis.NewStringResult("", c.getErr)
	}
	v, ok := c.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (c *fakeClient) Set(_ context.Context, key string, value interface{}, _ time.Duration) *goredis.StatusCmd {
	if c.setErr != nil {
		return goredis.NewStatusResult("", c.setErr)
	}
	c.values[key] = string(value.([]byte))
	return goredis.NewStatusResult("OK", nil)
}

func TestRepository_MissingKeyIsEmpty(t *testing.T) {
	repo := NewRepository(newFakeClient(), "")

	bookings, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_SaveThenLoad(t *testing.T) {
	client := newFakeClient()
	repo := NewRepository(client, "")

	err := repo.Save(context.Background(), []*domain.Booking{{
		ID:        "a",
		Date:      time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusConfirmed,
		CreatedAt: time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC),
	}})
	require.NoError(t, err)
	assert.Contains(t, client.values, DefaultKey)

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a", loaded[0].ID)
	assert.Equal(t, domain.StatusConfirmed, loaded[0].Status)
}

func TestRepository_Errors(t *testing.T) {
	client := newFakeClient()
	client.getErr = errors.New("connection refused")
	client.setErr = errors.New("READONLY")
	repo := NewRepository(client, "custom")

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrRead)

	assert.ErrorIs(t, repo.Save(context.Background(), nil), ErrWrite)
}

func TestRepository_CorruptValue(t *testing.T) {
	client := newFakeClient()
	client.values["custom"] = "not json"

	_, err := NewRepository(client, "custom").Load(context.Background())

	assert.ErrorIs(t, err, snapshot.ErrDecode)
}
