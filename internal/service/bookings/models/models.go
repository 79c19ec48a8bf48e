package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/integrations/whatsapp"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Request модели

// CreateBookingRequest данные новой заявки
// Обязательные поля: Date, ServiceID, ClientName, ClientPhone, ClientAddress
type CreateBookingRequest struct {
	Date          time.Time
	ServiceID     string
	ServiceName   string
	ClientName    string
	ClientPhone   string
	ClientEmail   *string
	ClientAddress string
	Notes         *string
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
	From   *string `json:"from,omitempty"`   // Начало периода YYYY-MM-DD (опционально)
	To     *string `json:"to,omitempty"`     // Конец периода YYYY-MM-DD (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if r.From != nil {
		from, err := time.Parse(domain.DateFormat, *r.From)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &from
	}

	if r.To != nil {
		to, err := time.Parse(domain.DateFormat, *r.To)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &to
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string  `json:"id"`
	ShortID       string  `json:"shortId"`
	Date          string  `json:"date"` // "2024-07-10"
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	ClientName    string  `json:"clientName"`
	ClientPhone   string  `json:"clientPhone"`
	ClientEmail   *string `json:"clientEmail,omitempty"`
	ClientAddress string  `json:"clientAddress"`
	Notes         *string `json:"notes,omitempty"`
	Status        string  `json:"status"`
	WhatsappSent  bool    `json:"whatsappSent"`

	CreatedAt   string  `json:"createdAt"`             // ISO 8601
	ConfirmedAt *string `json:"confirmedAt,omitempty"` // ISO 8601

	// ContactLink ссылка wa.me на номер клиента, только в ответах администратору
	ContactLink *string `json:"contactLink,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse агрегированная статистика
type StatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Cancelled int `json:"cancelled"`
}

// DatesResponse список дат
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		ShortID:       b.ShortID(),
		Date:          b.Date.Format(domain.DateFormat),
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		ClientName:    b.ClientName,
		ClientPhone:   b.ClientPhone,
		ClientEmail:   b.ClientEmail,
		ClientAddress: b.ClientAddress,
		Notes:         b.Notes,
		Status:        string(b.Status),
		WhatsappSent:  b.WhatsappSent,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}

	if b.ConfirmedAt != nil {
		confirmedStr := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &confirmedStr
	}

	return resp
}

// FromDomainBookingForAdmin конвертирует бронирование для администратора (со ссылкой на клиента)
func FromDomainBookingForAdmin(b *domain.Booking) *BookingResponse {
	resp := FromDomainBooking(b)
	if resp == nil {
		return nil
	}

	if link, err := whatsapp.ClientLink(b.ClientPhone); err == nil {
		resp.ContactLink = &link
	}
	return resp
}

// FromDomainBookingList конвертирует список для администратора
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBookingForAdmin(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s domain.Stats) *StatsResponse {
	return &StatsResponse{
		Total:     s.Total,
		Confirmed: s.Confirmed,
		Pending:   s.Pending,
		Cancelled: s.Cancelled,
	}
}

// FromDates конвертирует даты в строки YYYY-MM-DD (дубликаты сохраняются)
func FromDates(dates []time.Time) *DatesResponse {
	resp := &DatesResponse{Dates: make([]string, len(dates))}
	for i, d := range dates {
		resp.Dates[i] = d.Format(domain.DateFormat)
	}
	return resp
}
