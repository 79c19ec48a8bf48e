package bookings

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/events"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

// persistTimeout ограничение на запись снимка
const persistTimeout = 10 * time.Second

// Store единственный владелец набора бронирований
// Все чтения и изменения проходят через методы Store, каждое изменение сохраняет полный набор
// через SnapshotRepository до возврата управления.
type Store struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string // порядок создания

	repo         SnapshotRepository
	publisher    EventPublisher
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewStore создает пустое хранилище бронирований
// publisher может быть nil, тогда события не публикуются
func NewStore(
	repo SnapshotRepository,
	publisher EventPublisher,
	logger Logger,
) *Store {
	return &Store{
		bookings:     make(map[string]*domain.Booking),
		repo:         repo,
		publisher:    publisher,
		idGenerator:  &UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Load загружает сохранённый набор бронирований
// Ошибка чтения не прерывает запуск: хранилище остаётся пустым, ошибка логируется
func (s *Store) Load(ctx context.Context) int {
	loaded, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error("Load: failed to load bookings, starting with empty set: %v", err)
		loaded = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[string]*domain.Booking, len(loaded))
	s.order = make([]string, 0, len(loaded))

	for _, b := range loaded {
		if b == nil || b.ID == "" {
			s.logger.Warn("Load: skipping booking without id")
			continue
		}
		if _, exists := s.bookings[b.ID]; exists {
			s.logger.Warn("Load: skipping duplicate booking id=%s", b.ID)
			continue
		}
		s.bookings[b.ID] = b.Clone()
		s.order = append(s.order, b.ID)
	}

	s.logger.Info("Load: loaded %d bookings", len(s.order))
	return len(s.order)
}

// Create создает новую заявку в статусе pending
// Заявка сразу помечается как отправленная в WhatsApp (whatsappSent = true)
func (s *Store) Create(ctx context.Context, req *models.CreateBookingRequest) (*domain.Booking, error) {
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()

	now := s.timeProvider.Now()
	booking := &domain.Booking{
		ID:            s.nextIDLocked(),
		Date:          domain.DateOnly(req.Date),
		ServiceID:     req.ServiceID,
		ServiceName:   req.ServiceName,
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientPhone:   strings.TrimSpace(req.ClientPhone),
		ClientEmail:   req.ClientEmail,
		ClientAddress: strings.TrimSpace(req.ClientAddress),
		Notes:         req.Notes,
		Status:        domain.StatusPending,
		WhatsappSent:  true,
		CreatedAt:     now,
	}

	s.bookings[booking.ID] = booking
	s.order = append(s.order, booking.ID)
	s.persistLocked(ctx, "Create")

	created := booking.Clone()
	s.mu.Unlock()

	s.logger.Info("Create: created booking id=%s, date=%s, service=%s",
		created.ID, created.Date.Format(domain.DateFormat), created.ServiceID)

	s.publish(ctx, events.TypeBookingCreated, created, now)
	return created, nil
}

// Confirm переводит заявку pending -> confirmed и проставляет confirmedAt
func (s *Store) Confirm(ctx context.Context, id string) TransitionResult {
	return s.transition(ctx, "Confirm", id, domain.StatusConfirmed)
}

// Cancel переводит заявку pending -> cancelled, confirmedAt не изменяется
func (s *Store) Cancel(ctx context.Context, id string) TransitionResult {
	return s.transition(ctx, "Cancel", id, domain.StatusCancelled)
}

func (s *Store) transition(ctx context.Context, op, id string, to domain.BookingStatus) TransitionResult {
	s.mu.Lock()

	booking, ok := s.bookings[id]
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return TransitionResult{Outcome: OutcomeNotFound}
	}

	allowed := booking.CanBeCancelled()
	if to == domain.StatusConfirmed {
		allowed = booking.CanBeConfirmed()
	}

	if !allowed {
		current := booking.Clone()
		s.mu.Unlock()
		s.logger.Warn("%s: booking id=%s is already %s, ignoring", op, id, current.Status)
		return TransitionResult{Outcome: OutcomeAlreadyTerminal, Booking: current}
	}

	now := s.timeProvider.Now()
	booking.Status = to
	if to == domain.StatusConfirmed {
		booking.ConfirmedAt = &now
	}
	s.persistLocked(ctx, op)

	updated := booking.Clone()
	s.mu.Unlock()

	s.logger.Info("%s: booking id=%s is now %s", op, id, to)

	eventType := events.TypeBookingConfirmed
	if to == domain.StatusCancelled {
		eventType = events.TypeBookingCancelled
	}
	s.publish(ctx, eventType, updated, now)

	return TransitionResult{Outcome: OutcomeOK, Booking: updated}
}

// GetByID возвращает копию бронирования по ID
func (s *Store) GetByID(id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking.Clone(), nil
}

// List возвращает бронирования в порядке создания с учетом фильтра
func (s *Store) List(filter domain.BookingsFilter) []*domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(s.order))
	for _, id := range s.order {
		b := s.bookings[id]
		if filter.Matches(b) {
			result = append(result, b.Clone())
		}
	}
	return result
}

// ListConfirmedDates возвращает даты всех подтверждённых бронирований
// Дубликаты сохраняются: два бронирования на один день дают две даты
func (s *Store) ListConfirmedDates() []time.Time {
	return s.collectDates(func(b *domain.Booking) bool {
		return b.IsConfirmed()
	})
}

// ListPendingDates возвращает даты заявок, ожидающих подтверждения
func (s *Store) ListPendingDates() []time.Time {
	return s.collectDates(func(b *domain.Booking) bool {
		return b.IsPending() && b.WhatsappSent
	})
}

func (s *Store) collectDates(match func(b *domain.Booking) bool) []time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dates := make([]time.Time, 0)
	for _, id := range s.order {
		if b := s.bookings[id]; match(b) {
			dates = append(dates, b.Date)
		}
	}
	return dates
}

// FindByDate возвращает первое (по порядку создания) бронирование на этот календарный день
func (s *Store) FindByDate(date time.Time) (*domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if b := s.bookings[id]; domain.IsSameDay(b.Date, date) {
			return b.Clone(), true
		}
	}
	return nil, false
}

// Stats пересчитывает статистику по текущему набору
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Stats{Total: len(s.order)}
	for _, id := range s.order {
		b := s.bookings[id]
		switch {
		case b.IsConfirmed():
			stats.Confirmed++
		case b.IsPending():
			stats.Pending++
		case b.IsCancelled():
			stats.Cancelled++
		}
	}
	return stats
}

// IsBookable проверяет, можно ли оставить заявку на дату
func (s *Store) IsBookable(date time.Time) bool {
	return domain.IsBookable(date, s.timeProvider.Now(), s.ListConfirmedDates())
}

// nextIDLocked генерирует ID, которого ещё нет в наборе
func (s *Store) nextIDLocked() string {
	for {
		id := s.idGenerator.NewID()
		if _, exists := s.bookings[id]; !exists && id != "" {
			return id
		}
		s.logger.Warn("nextID: generated id=%q is already taken, retrying", id)
	}
}

// persistLocked сохраняет полный набор. Ошибка записи только логируется:
// состояние в памяти остаётся основным до конца сессии.
// Запись не зависит от отмены ctx вызывающего (например, обрыва HTTP-соединения),
// ограничена только persistTimeout.
func (s *Store) persistLocked(ctx context.Context, op string) {
	snapshot := make([]*domain.Booking, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.bookings[id].Clone())
	}

	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()

	if err := s.repo.Save(saveCtx, snapshot); err != nil {
		s.logger.Error("%s: failed to persist %d bookings: %v", op, len(snapshot), err)
	}
}

func (s *Store) publish(ctx context.Context, t events.Type, b *domain.Booking, at time.Time) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewBookingEvent(t, b, at)); err != nil {
		s.logger.Warn("publish: event %s for booking id=%s not dispatched: %v", t, b.ID, err)
	}
}

// validateCreateRequest проверяет обязательные поля заявки
func validateCreateRequest(req *models.CreateBookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	required := []struct {
		name  string
		value string
	}{
		{"serviceId", req.ServiceID},
		{"clientName", req.ClientName},
		{"clientPhone", req.ClientPhone},
		{"clientAddress", req.ClientAddress},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, field.name)
		}
	}

	return nil
}
