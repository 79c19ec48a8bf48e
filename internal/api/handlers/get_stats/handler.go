package get_stats

import (
	"net/http"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

type Handler struct {
	store  BookingStore
	logger Logger
}

func NewHandler(store BookingStore, logger Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Handle GET /api/v1/bookings/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats := h.store.Stats()

	h.logger.Info("GET /bookings/stats - total=%d, confirmed=%d, pending=%d, cancelled=%d",
		stats.Total, stats.Confirmed, stats.Pending, stats.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainStats(stats))
}
