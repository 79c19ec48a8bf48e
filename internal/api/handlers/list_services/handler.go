package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-BookingAvailability/internal/api/handlers"
)

type Handler struct {
	catalog ServiceCatalog
	logger  Logger
}

func NewHandler(catalog ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.All()

	h.logger.Info("GET /services - count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
