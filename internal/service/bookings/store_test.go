package bookings

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/events"
	"github.com/m04kA/SMC-BookingAvailability/internal/infra/storage/jsonfile"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingAvailability/pkg/logger"
	"github.com/m04kA/SMC-BookingAvailability/pkg/ptr"
)

type memoryRepo struct {
	loaded  []*domain.Booking
	loadErr error
	saveErr error
	saves   int
	last    []*domain.Booking
}

func (r *memoryRepo) Load(context.Context) ([]*domain.Booking, error) {
	return r.loaded, r.loadErr
}

func (r *memoryRepo) Save(ctx context.Context, bookings []*domain.Booking) error {
	// как и настоящие адаптеры, отменённый ctx не пишет
	if err := ctx.Err(); err != nil {
		return err
	}
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.last = bookings
	return nil
}

type capturePublisher struct {
	events []events.BookingEvent
}

func (p *capturePublisher) Publish(_ context.Context, event events.BookingEvent) error {
	p.events = append(p.events, event)
	return nil
}

// stepClock каждый вызов Now сдвигает время на минуту
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

type sequenceIDs struct {
	ids []string
	n   int
}

func (g *sequenceIDs) NewID() string {
	if g.n < len(g.ids) {
		id := g.ids[g.n]
		g.n++
		return id
	}
	g.n++
	return fmt.Sprintf("booking-%06d", g.n)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) (*Store, *memoryRepo, *capturePublisher) {
	t.Helper()

	repo := &memoryRepo{}
	pub := &capturePublisher{}
	store := NewStore(repo, pub, logger.NewNop())
	store.timeProvider = &stepClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	store.idGenerator = &sequenceIDs{}
	return store, repo, pub
}

func validRequest(date time.Time) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		Date:          date,
		ServiceID:     "residential",
		ServiceName:   "Limpeza Residencial",
		ClientName:    "Ana",
		ClientPhone:   "+551199999999",
		ClientAddress: "Rua X, 10",
	}
}

func mustCreate(t *testing.T, store *Store, date time.Time) *domain.Booking {
	t.Helper()
	b, err := store.Create(context.Background(), validRequest(date))
	require.NoError(t, err)
	return b
}

func TestStore_CreateStartsPending(t *testing.T) {
	store, repo, pub := newTestStore(t)

	b := mustCreate(t, store, time.Date(2024, 7, 10, 14, 30, 0, 0, time.UTC))

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.True(t, b.WhatsappSent)
	assert.Nil(t, b.ConfirmedAt)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, day(2024, 7, 10), b.Date, "time of day is dropped")

	assert.Equal(t, 1, repo.saves)
	require.Len(t, repo.last, 1)
	assert.Equal(t, b.ID, repo.last[0].ID)

	require.Len(t, pub.events, 1)
	assert.Equal(t, events.TypeBookingCreated, pub.events[0].Type)
	assert.Equal(t, b.ID, pub.events[0].Booking.ID)
}

func TestStore_CreateRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.CreateBookingRequest)
	}{
		{"no date", func(r *models.CreateBookingRequest) { r.Date = time.Time{} }},
		{"no service", func(r *models.CreateBookingRequest) { r.ServiceID = "" }},
		{"no name", func(r *models.CreateBookingRequest) { r.ClientName = "   " }},
		{"no phone", func(r *models.CreateBookingRequest) { r.ClientPhone = "" }},
		{"no address", func(r *models.CreateBookingRequest) { r.ClientAddress = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, repo, pub := newTestStore(t)
			req := validRequest(day(2024, 7, 10))
			tt.modify(req)

			_, err := store.Create(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, 0, store.Stats().Total)
			assert.Equal(t, 0, repo.saves)
			assert.Empty(t, pub.events)
		})
	}

	store, _, _ := newTestStore(t)
	_, err := store.Create(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStore_CreateOptionalFields(t *testing.T) {
	store, _, _ := newTestStore(t)
	req := validRequest(day(2024, 7, 10))
	req.ClientEmail = ptr.Ptr("ana@example.com")
	req.Notes = ptr.Ptr("Trazer escada")

	b, err := store.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", ptr.Value(b.ClientEmail))
	assert.Equal(t, "Trazer escada", ptr.Value(b.Notes))
}

func TestStore_IDsAreUniqueEvenOnGeneratorCollision(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.idGenerator = &sequenceIDs{ids: []string{"same", "same", "other"}}

	first := mustCreate(t, store, day(2024, 7, 10))
	second := mustCreate(t, store, day(2024, 7, 10))

	assert.Equal(t, "same", first.ID)
	assert.Equal(t, "other", second.ID)
}

func TestStore_Confirm(t *testing.T) {
	store, repo, pub := newTestStore(t)
	b := mustCreate(t, store, day(2024, 7, 10))

	res := store.Confirm(context.Background(), b.ID)

	require.True(t, res.OK())
	assert.NoError(t, res.Err())
	assert.Equal(t, domain.StatusConfirmed, res.Booking.Status)
	require.NotNil(t, res.Booking.ConfirmedAt)
	assert.False(t, res.Booking.ConfirmedAt.Before(res.Booking.CreatedAt))
	assert.Equal(t, 2, repo.saves)
	require.Len(t, pub.events, 2)
	assert.Equal(t, events.TypeBookingConfirmed, pub.events[1].Type)

	again := store.Confirm(context.Background(), b.ID)

	assert.Equal(t, OutcomeAlreadyTerminal, again.Outcome)
	assert.ErrorIs(t, again.Err(), ErrAlreadyTerminal)
	assert.Equal(t, domain.StatusConfirmed, again.Booking.Status)
	assert.Equal(t, *res.Booking.ConfirmedAt, *again.Booking.ConfirmedAt, "confirmedAt is not restamped")
	assert.Equal(t, 2, repo.saves, "no-op does not persist")
	assert.Len(t, pub.events, 2, "no-op does not publish")
}

func TestStore_Cancel(t *testing.T) {
	store, _, pub := newTestStore(t)
	b := mustCreate(t, store, day(2024, 7, 10))

	res := store.Cancel(context.Background(), b.ID)

	require.True(t, res.OK())
	assert.Equal(t, domain.StatusCancelled, res.Booking.Status)
	assert.Nil(t, res.Booking.ConfirmedAt)
	require.Len(t, pub.events, 2)
	assert.Equal(t, events.TypeBookingCancelled, pub.events[1].Type)
}

func TestStore_TerminalStatesDoNotTransition(t *testing.T) {
	store, _, _ := newTestStore(t)
	cancelled := mustCreate(t, store, day(2024, 7, 10))
	confirmed := mustCreate(t, store, day(2024, 7, 11))
	store.Cancel(context.Background(), cancelled.ID)
	store.Confirm(context.Background(), confirmed.ID)

	res := store.Confirm(context.Background(), cancelled.ID)
	assert.Equal(t, OutcomeAlreadyTerminal, res.Outcome)
	assert.Equal(t, domain.StatusCancelled, res.Booking.Status)
	assert.Nil(t, res.Booking.ConfirmedAt)

	res = store.Cancel(context.Background(), confirmed.ID)
	assert.Equal(t, OutcomeAlreadyTerminal, res.Outcome)
	assert.Equal(t, domain.StatusConfirmed, res.Booking.Status)
	assert.NotNil(t, res.Booking.ConfirmedAt)
}

func TestStore_TransitionNotFound(t *testing.T) {
	store, repo, pub := newTestStore(t)
	mustCreate(t, store, day(2024, 7, 10))

	for _, res := range []TransitionResult{
		store.Confirm(context.Background(), "missing"),
		store.Cancel(context.Background(), "missing"),
	} {
		assert.Equal(t, OutcomeNotFound, res.Outcome)
		assert.Nil(t, res.Booking)
		assert.ErrorIs(t, res.Err(), ErrBookingNotFound)
	}

	assert.Equal(t, 1, repo.saves)
	assert.Len(t, pub.events, 1)
	assert.Equal(t, domain.Stats{Total: 1, Pending: 1}, store.Stats())
}

func TestStore_ListConfirmedDatesKeepsDuplicates(t *testing.T) {
	store, _, _ := newTestStore(t)
	a := mustCreate(t, store, day(2024, 6, 1))
	b := mustCreate(t, store, day(2024, 6, 1))
	c := mustCreate(t, store, day(2024, 6, 2))
	mustCreate(t, store, day(2024, 6, 3))
	store.Confirm(context.Background(), a.ID)
	store.Confirm(context.Background(), b.ID)
	store.Cancel(context.Background(), c.ID)

	assert.Equal(t, []time.Time{day(2024, 6, 1), day(2024, 6, 1)}, store.ListConfirmedDates())
	assert.Equal(t, []time.Time{day(2024, 6, 3)}, store.ListPendingDates())
}

func TestStore_ConfirmedAndPendingOnSameDate(t *testing.T) {
	store, _, _ := newTestStore(t)
	a := mustCreate(t, store, day(2024, 6, 1))
	mustCreate(t, store, day(2024, 6, 1))
	store.Confirm(context.Background(), a.ID)

	assert.True(t, domain.ContainsDay(store.ListConfirmedDates(), day(2024, 6, 1)))
	assert.True(t, domain.ContainsDay(store.ListPendingDates(), day(2024, 6, 1)))
	assert.False(t, store.IsBookable(day(2024, 6, 1)))
}

func TestStore_PendingDatesRequireWhatsappSent(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.repo = &memoryRepo{loaded: []*domain.Booking{
		{ID: "legacy", Date: day(2024, 6, 5), Status: domain.StatusPending, WhatsappSent: false},
		{ID: "sent", Date: day(2024, 6, 6), Status: domain.StatusPending, WhatsappSent: true},
	}}
	store.Load(context.Background())

	assert.Equal(t, []time.Time{day(2024, 6, 6)}, store.ListPendingDates())
	assert.Equal(t, 2, store.Stats().Pending)
}

func TestStore_Stats(t *testing.T) {
	store, _, _ := newTestStore(t)
	a := mustCreate(t, store, day(2024, 6, 1))
	b := mustCreate(t, store, day(2024, 6, 2))
	mustCreate(t, store, day(2024, 6, 3))

	store.Confirm(context.Background(), a.ID)
	store.Cancel(context.Background(), b.ID)

	assert.Equal(t, domain.Stats{Total: 3, Confirmed: 1, Pending: 1, Cancelled: 1}, store.Stats())
}

func TestStore_EndToEndScenario(t *testing.T) {
	store, _, _ := newTestStore(t)

	created, err := store.Create(context.Background(), &models.CreateBookingRequest{
		Date:          day(2024, 7, 10),
		ServiceID:     "residential",
		ClientName:    "Ana",
		ClientPhone:   "+551199999999",
		ClientAddress: "Rua X, 10",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)

	res := store.Confirm(context.Background(), created.ID)
	require.True(t, res.OK())
	assert.Equal(t, domain.StatusConfirmed, res.Booking.Status)
	assert.NotNil(t, res.Booking.ConfirmedAt)

	found, ok := store.FindByDate(time.Date(2024, 7, 10, 18, 45, 0, 0, time.FixedZone("BRT", -3*60*60)))
	require.True(t, ok)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, domain.StatusConfirmed, found.Status)
}

func TestStore_FindByDateReturnsFirstCreated(t *testing.T) {
	store, _, _ := newTestStore(t)
	first := mustCreate(t, store, day(2024, 7, 10))
	mustCreate(t, store, day(2024, 7, 10))

	found, ok := store.FindByDate(day(2024, 7, 10))
	require.True(t, ok)
	assert.Equal(t, first.ID, found.ID)

	_, ok = store.FindByDate(day(2024, 7, 11))
	assert.False(t, ok)
}

func TestStore_ReturnedRecordsAreCopies(t *testing.T) {
	store, _, _ := newTestStore(t)
	b := mustCreate(t, store, day(2024, 7, 10))

	b.Date = day(2030, 1, 1)
	b.Status = domain.StatusConfirmed

	got, err := store.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 7, 10), got.Date)
	assert.Equal(t, domain.StatusPending, got.Status)

	_, err = store.GetByID("missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStore_ListWithFilter(t *testing.T) {
	store, _, _ := newTestStore(t)
	a := mustCreate(t, store, day(2024, 7, 10))
	mustCreate(t, store, day(2024, 7, 20))
	mustCreate(t, store, day(2024, 8, 1))
	store.Confirm(context.Background(), a.ID)

	pending := domain.StatusPending
	from := day(2024, 7, 1)
	to := day(2024, 7, 31)

	assert.Len(t, store.List(domain.BookingsFilter{}), 3)
	got := store.List(domain.BookingsFilter{Status: &pending, StartDate: &from, EndDate: &to})
	require.Len(t, got, 1)
	assert.Equal(t, day(2024, 7, 20), got[0].Date)
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	store, repo, _ := newTestStore(t)
	repo.saveErr = errors.New("disk full")

	b, err := store.Create(context.Background(), validRequest(day(2024, 7, 10)))
	require.NoError(t, err)

	res := store.Confirm(context.Background(), b.ID)
	assert.True(t, res.OK())
	assert.Equal(t, domain.Stats{Total: 1, Confirmed: 1}, store.Stats())
	assert.Equal(t, 2, repo.saves)
}

func TestStore_LoadFallsBackToEmptySet(t *testing.T) {
	store, _, _ := newTestStore(t)
	mustCreate(t, store, day(2024, 7, 10))
	store.repo = &memoryRepo{loadErr: errors.New("decode: unexpected end of JSON input")}

	n := store.Load(context.Background())

	assert.Equal(t, 0, n)
	assert.Equal(t, domain.Stats{}, store.Stats())
}

func TestStore_LoadSkipsInvalidAndDuplicateRecords(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.repo = &memoryRepo{loaded: []*domain.Booking{
		{ID: "a", Date: day(2024, 7, 10), Status: domain.StatusConfirmed},
		nil,
		{ID: "", Date: day(2024, 7, 11), Status: domain.StatusPending},
		{ID: "a", Date: day(2024, 7, 12), Status: domain.StatusPending},
	}}

	n := store.Load(context.Background())

	assert.Equal(t, 1, n)
	got, err := store.GetByID("a")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 7, 10), got.Date)
}

func TestStore_IsBookable(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.timeProvider = &stepClock{now: time.Date(2024, 7, 5, 12, 0, 0, 0, time.UTC)}

	pendingOnly := mustCreate(t, store, day(2024, 7, 10))
	confirmed := mustCreate(t, store, day(2024, 7, 11))
	store.Confirm(context.Background(), confirmed.ID)

	assert.True(t, store.IsBookable(pendingOnly.Date), "pending does not reserve the date")
	assert.False(t, store.IsBookable(day(2024, 7, 11)))
	assert.False(t, store.IsBookable(day(2024, 7, 1)))
	assert.True(t, store.IsBookable(day(2024, 7, 5)))
}

func TestStore_NilPublisher(t *testing.T) {
	store := NewStore(&memoryRepo{}, nil, logger.NewNop())

	b, err := store.Create(context.Background(), validRequest(day(2030, 1, 1)))
	require.NoError(t, err)
	assert.True(t, store.Confirm(context.Background(), b.ID).OK())
}

func TestStore_PersistsWhenCallerContextIsCancelled(t *testing.T) {
	store, repo, _ := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := store.Create(ctx, validRequest(day(2024, 7, 10)))
	require.NoError(t, err)
	require.Equal(t, 1, repo.saves)
	require.Len(t, repo.last, 1)

	result := store.Confirm(ctx, created.ID)
	require.True(t, result.OK())
	assert.Equal(t, 2, repo.saves)
	assert.Equal(t, domain.StatusConfirmed, repo.last[0].Status)
}

func TestStore_CancelledContextSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	first := NewStore(jsonfile.NewRepository(path), nil, logger.NewNop())
	created, err := first.Create(ctx, validRequest(day(2024, 7, 10)))
	require.NoError(t, err)

	restarted := NewStore(jsonfile.NewRepository(path), nil, logger.NewNop())
	require.Equal(t, 1, restarted.Load(context.Background()))

	b, err := restarted.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.True(t, domain.IsSameDay(day(2024, 7, 10), b.Date))
}
