package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	createBooking "github.com/m04kA/SMC-BookingAvailability/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string  `json:"date"` // "2024-07-10"
	ServiceID     string  `json:"serviceId"`
	ClientName    string  `json:"clientName"`
	ClientPhone   string  `json:"clientPhone"`
	ClientEmail   *string `json:"clientEmail,omitempty"`
	ClientAddress string  `json:"clientAddress"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           string `json:"id"`
	ShortID      string `json:"shortId"`
	Date         string `json:"date"`
	ServiceID    string `json:"serviceId"`
	ServiceName  string `json:"serviceName"`
	Status       string `json:"status"`
	WhatsappSent bool   `json:"whatsappSent"`
	WhatsappURL  string `json:"whatsappUrl,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Date:          date,
		ServiceID:     r.ServiceID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
		ClientAddress: r.ClientAddress,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		ShortID:      resp.ShortID,
		Date:         resp.Date.Format(domain.DateFormat),
		ServiceID:    resp.ServiceID,
		ServiceName:  resp.ServiceName,
		Status:       resp.Status,
		WhatsappSent: resp.WhatsappSent,
		WhatsappURL:  resp.WhatsappURL,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
