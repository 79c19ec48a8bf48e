package list_services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/pkg/logger"
)

func TestHandler(t *testing.T) {
	catalog := domain.NewCatalog([]domain.Service{
		{ID: "residential", Title: "Limpeza Residencial", Description: "Casas", Price: "R$ 120", Duration: "3-4 horas"},
	})
	rec := httptest.NewRecorder()

	NewHandler(catalog, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"services":[{"id":"residential","title":"Limpeza Residencial","description":"Casas","price":"R$ 120","duration":"3-4 horas"}]}`,
		rec.Body.String())
}
