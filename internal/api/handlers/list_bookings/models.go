package list_bookings

import (
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос из query параметров
// Пустые параметры означают отсутствие фильтра
func ToServiceRequest(statusStr, fromStr, toStr string) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}

	if statusStr != "" {
		req.Status = &statusStr
	}
	if fromStr != "" {
		req.From = &fromStr
	}
	if toStr != "" {
		req.To = &toStr
	}

	return req
}
