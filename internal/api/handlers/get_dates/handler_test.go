package get_dates

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingAvailability/pkg/logger"
)

type fakeStore struct{}

func (fakeStore) ListConfirmedDates() []time.Time {
	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return []time.Time{d, d}
}

func (fakeStore) ListPendingDates() []time.Time {
	return []time.Time{}
}

func serve(kind Kind) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(fakeStore{}, kind, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dates/"+string(kind), nil))
	return rec
}

func TestHandler(t *testing.T) {
	rec := serve(KindConfirmed)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dates":["2024-06-01","2024-06-01"]}`, rec.Body.String())

	rec = serve(KindPending)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dates":[]}`, rec.Body.String())
}
