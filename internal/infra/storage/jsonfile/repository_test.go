package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/snapshot"
)

func TestRepository_MissingFileIsEmpty(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "bookings.json"))

	bookings, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "bookings.json")
	repo := NewRepository(path)

	saved := []*domain.Booking{
		{ID: "a", Date: time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), Status: domain.StatusPending, WhatsappSent: true, CreatedAt: time.Date(2024, 7, 1, 8, 0, 0, 0, time.UTC)},
		{ID: "b", Date: time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC), Status: domain.StatusCancelled, CreatedAt: time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, repo.Save(context.Background(), saved))
	require.NoError(t, repo.Save(context.Background(), saved[:1]))

	loaded, err := NewRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "a", loaded[0].ID)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewRepository(path).Load(context.Background())

	assert.ErrorIs(t, err, snapshot.ErrDecode)
}

func TestRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := NewRepository(filepath.Join(t.TempDir(), "bookings.json"))

	assert.ErrorIs(t, repo.Save(ctx, nil), context.Canceled)
	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
