package get_booking_by_date

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound    = "на эту дату нет бронирований"
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

// Handle GET /api/v1/bookings/by-date/{date}
// Возвращает первое по времени создания бронирование на этот день (в любом статусе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/by-date/{date} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booking, ok := h.store.FindByDate(date)
	if !ok {
		h.logger.Info("GET /bookings/by-date/{date} - No booking on %s", dateStr)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	h.logger.Info("GET /bookings/by-date/{date} - Booking found: date=%s, booking_id=%s", dateStr, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBookingForAdmin(booking))
}
