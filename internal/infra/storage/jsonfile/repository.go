package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/snapshot"
)

// Repository хранит полный набор бронирований в одном JSON файле
type Repository struct {
	mu   sync.Mutex
	path string
}

// NewRepository создает репозиторий поверх файла path
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Load читает набор бронирований
// Отсутствующий файл означает пустой набор
func (r *Repository) Load(ctx context.Context) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read %s: %v", ErrRead, r.path, err)
	}

	return snapshot.Decode(data)
}

// Save перезаписывает файл целиком
// Запись идёт во временный файл рядом с целевым и затем переименовывается,
// поэтому читатель видит либо старый, либо новый снимок
func (r *Repository) Save(ctx context.Context, bookings []*domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := snapshot.Encode(bookings)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: Save - create dir %s: %v", ErrWrite, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp file: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - sync temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - close temp file: %v", ErrWrite, err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: Save - rename to %s: %v", ErrWrite, r.path, err)
	}

	return nil
}
