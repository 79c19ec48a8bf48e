package list_services

import (
	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Duration    string `json:"duration"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог в HTTP response
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Price:       s.Price,
			Duration:    s.Duration,
		})
	}
	return resp
}
