package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BookingAvailability/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgServiceNotFound    = "услуга не найдена"
	msgDatePast           = "дата бронирования уже прошла"
	msgDateUnavailable    = "выбранная дата уже занята"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidInput+": "+err.Error())

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDatePast)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: date=%s", req.Date)
			handlers.RespondConflict(w, msgDateUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, service_id=%s, error=%v",
				req.Date, req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s",
		result.ID, response.Date)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
