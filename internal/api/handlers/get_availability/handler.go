package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	getAvailability "github.com/m04kA/SMC-BookingAvailability/internal/usecase/get_availability"
)

const (
	msgInvalidMonth = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase AvailabilityUseCase
	now     func() time.Time
	logger  Logger
}

func NewHandler(useCase AvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		now:     time.Now,
		logger:  logger,
	}
}

// HandleMonth GET /api/v1/availability
// Query params: month (YYYY-MM, по умолчанию текущий месяц)
func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		monthStr = h.now().Format(domain.MonthFormat)
	}

	useCaseReq, err := ToMonthRequest(monthStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month %q: %v", monthStr, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.GetMonth(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "GET /availability", err)
		return
	}

	h.logger.Info("GET /availability - month=%s, available=%d", monthStr, result.Summary.Available)
	handlers.RespondJSON(w, http.StatusOK, FromMonthResponse(result))
}

// HandleDate GET /api/v1/availability/{date}
func (h *Handler) HandleDate(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/{date} - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.CheckDate(r.Context(), &getAvailability.DateRequest{Date: date})
	if err != nil {
		h.respondError(w, "GET /availability/{date}", err)
		return
	}

	h.logger.Info("GET /availability/{date} - date=%s, bookable=%t", dateStr, result.Bookable)
	handlers.RespondJSON(w, http.StatusOK, FromDateResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, getAvailability.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)
	default:
		h.logger.Error("%s - Failed to get availability: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
