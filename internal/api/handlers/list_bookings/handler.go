package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некорректный статус, ожидается pending, confirmed или cancelled"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange  = "начало периода позже его конца"
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

// Handle GET /api/v1/bookings
// Query params: status, from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceReq := ToServiceRequest(query.Get("status"), query.Get("from"), query.Get("to"))

	filter, err := serviceReq.ToDomainFilter()
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid parameters: %v", err)
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	if filter.StartDate != nil && filter.EndDate != nil && domain.IsDayBefore(*filter.EndDate, *filter.StartDate) {
		h.logger.Warn("GET /bookings - Invalid range: from=%s, to=%s", query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result := models.FromDomainBookingList(h.store.List(filter))

	h.logger.Info("GET /bookings - Bookings retrieved successfully: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
