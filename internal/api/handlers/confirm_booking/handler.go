package confirm_booking

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgCannotConfirm    = "бронирование уже подтверждено или отменено"
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

// Handle PATCH /api/v1/bookings/{bookingId}/confirm
// Администратор получил "ESTA CONFIRMADO" и подтверждает заявку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/confirm - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result := h.store.Confirm(r.Context(), bookingID)

	switch result.Outcome {
	case bookings.OutcomeOK:
		h.logger.Info("PATCH /bookings/{id}/confirm - Booking confirmed successfully: booking_id=%s", bookingID)
		handlers.RespondJSON(w, http.StatusOK, models.FromDomainBookingForAdmin(result.Booking))

	case bookings.OutcomeNotFound:
		h.logger.Warn("PATCH /bookings/{id}/confirm - Booking not found: booking_id=%s", bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case bookings.OutcomeAlreadyTerminal:
		h.logger.Warn("PATCH /bookings/{id}/confirm - Cannot confirm: booking_id=%s, status=%s",
			bookingID, result.Booking.Status)
		handlers.RespondConflict(w, msgCannotConfirm)

	default:
		h.logger.Error("PATCH /bookings/{id}/confirm - Unexpected outcome %s: booking_id=%s", result.Outcome, bookingID)
		handlers.RespondInternalError(w)
	}
}
