package get_dates

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

// Kind какой список дат отдаёт обработчик
type Kind string

const (
	KindConfirmed Kind = "confirmed"
	KindPending   Kind = "pending"
)

type Handler struct {
	store  BookingStore
	kind   Kind
	logger Logger
}

func NewHandler(store BookingStore, kind Kind, logger Logger) *Handler {
	return &Handler{
		store:  store,
		kind:   kind,
		logger: logger,
	}
}

// Handle GET /api/v1/dates/confirmed и GET /api/v1/dates/pending
// Дубликаты сохраняются: две записи на один день дают две даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var dates []time.Time
	switch h.kind {
	case KindPending:
		dates = h.store.ListPendingDates()
	default:
		dates = h.store.ListConfirmedDates()
	}

	h.logger.Info("GET /dates/%s - count=%d", h.kind, len(dates))
	handlers.RespondJSON(w, http.StatusOK, models.FromDates(dates))
}
