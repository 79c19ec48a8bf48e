package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// Record сохранённое представление бронирования
type Record struct {
	ID            string  `json:"id"`
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
	CreatedAt     string  `json:"createdAt"`
	ConfirmedAt   *string `json:"confirmedAt,omitempty"`
}

// Encode сериализует полный набор бронирований в JSON массив
func Encode(bookings []*domain.Booking) ([]byte, error) {
	records := make([]Record, 0, len(bookings))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		records = append(records, FromDomain(b))
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("%w: Encode - marshal %d records: %v", ErrEncode, len(records), err)
	}
	return data, nil
}

// Decode разбирает сохранённый набор
// Пустой ввод означает пустой набор
func Decode(data []byte) ([]*domain.Booking, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.Booking{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: Decode - unmarshal: %v", ErrDecode, err)
	}

	bookings := make([]*domain.Booking, 0, len(records))
	for i := range records {
		b, err := records[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: Decode - record %d: %v", ErrDecode, i, err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// FromDomain конвертирует бронирование в сохраняемую запись
func FromDomain(b *domain.Booking) Record {
	r := Record{
		ID:            b.ID,
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
		CreatedAt:     b.CreatedAt.Format(time.RFC3339Nano),
	}
	if b.ConfirmedAt != nil {
		confirmedAt := b.ConfirmedAt.Format(time.RFC3339Nano)
		r.ConfirmedAt = &confirmedAt
	}
	return r
}

// ToDomain восстанавливает бронирование из записи
func (r *Record) ToDomain() (*domain.Booking, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	status, ok := domain.ParseBookingStatus(r.Status)
	if !ok {
		return nil, fmt.Errorf("unknown status %q", r.Status)
	}

	var createdAt time.Time
	if r.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339Nano, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid createdAt %q: %v", r.CreatedAt, err)
		}
	}

	b := &domain.Booking{
		ID:            r.ID,
		Date:          date,
		ServiceID:     r.ServiceID,
		ServiceName:   r.ServiceName,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
		ClientAddress: r.ClientAddress,
		Notes:         r.Notes,
		Status:        status,
		WhatsappSent:  r.WhatsappSent,
		CreatedAt:     createdAt,
	}

	if r.ConfirmedAt != nil && *r.ConfirmedAt != "" {
		confirmedAt, err := time.Parse(time.RFC3339Nano, *r.ConfirmedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid confirmedAt %q: %v", *r.ConfirmedAt, err)
		}
		b.ConfirmedAt = &confirmedAt
	}

	return b, nil
}

// ParseDate разбирает дату бронирования
// Принимает "YYYY-MM-DD" и полный ISO 8601 момент времени (старые записи), от момента остаётся только день
func ParseDate(value string) (time.Time, error) {
	if d, err := time.Parse(domain.DateFormat, value); err == nil {
		return d, nil
	}

	instant, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	y, m, d := instant.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
