package get_availability

import (
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	getAvailability "github.com/m04kA/SMC-BookingAvailability/internal/usecase/get_availability"
)

// MonthResponse HTTP response model
type MonthResponse struct {
	Month   string          `json:"month"` // "2024-07"
	Days    []DayResponse   `json:"days"`
	Summary SummaryResponse `json:"summary"`
}

// DayResponse день календаря
type DayResponse struct {
	Date       string `json:"date"`
	Status     string `json:"status"` // booked, pending, available, past
	Selectable bool   `json:"selectable"`
}

// SummaryResponse счетчики месяца
type SummaryResponse struct {
	Available int `json:"available"`
	Booked    int `json:"booked"`
	Pending   int `json:"pending"`
}

// DateResponse доступность одной даты
type DateResponse struct {
	Date      string `json:"date"`
	Bookable  bool   `json:"bookable"`
	Confirmed bool   `json:"confirmed"`
	Pending   bool   `json:"pending"`
}

// ToMonthRequest парсит параметр month (YYYY-MM)
func ToMonthRequest(monthStr string) (*getAvailability.MonthRequest, error) {
	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		return nil, err
	}
	return &getAvailability.MonthRequest{Year: month.Year(), Month: month.Month()}, nil
}

// FromMonthResponse конвертирует календарь в HTTP response
func FromMonthResponse(resp *getAvailability.MonthResponse) *MonthResponse {
	result := &MonthResponse{
		Month: time.Date(resp.Year, resp.Month, 1, 0, 0, 0, 0, time.UTC).Format(domain.MonthFormat),
		Days:  make([]DayResponse, 0, len(resp.Days)),
		Summary: SummaryResponse{
			Available: resp.Summary.Available,
			Booked:    resp.Summary.Booked,
			Pending:   resp.Summary.Pending,
		},
	}

	for _, d := range resp.Days {
		result.Days = append(result.Days, DayResponse{
			Date:       d.Date.Format(domain.DateFormat),
			Status:     string(d.Status),
			Selectable: d.Selectable,
		})
	}

	return result
}

// FromDateResponse конвертирует проверку даты в HTTP response
func FromDateResponse(resp *getAvailability.DateResponse) *DateResponse {
	return &DateResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Bookable:  resp.Bookable,
		Confirmed: resp.Confirmed,
		Pending:   resp.Pending,
	}
}
