package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// UseCase use case календаря доступности
type UseCase struct {
	store        BookingStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store BookingStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetMonth строит календарь месяца
// Приоритет статусов: booked, pending, past, available.
// Дата с заявкой в ожидании остаётся доступной для выбора.
func (uc *UseCase) GetMonth(_ context.Context, req *MonthRequest) (*MonthResponse, error) {
	if err := validateMonth(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	confirmed := uc.store.ListConfirmedDates()
	pending := uc.store.ListPendingDates()

	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	resp := &MonthResponse{
		Year:  req.Year,
		Month: req.Month,
		Days:  make([]Day, 0, daysInMonth),
	}

	for i := 0; i < daysInMonth; i++ {
		date := first.AddDate(0, 0, i)

		isBooked := domain.ContainsDay(confirmed, date)
		isPending := domain.ContainsDay(pending, date)
		isPast := domain.IsDateInPast(date, now)

		day := Day{
			Date:       date,
			Status:     dayStatus(isBooked, isPending, isPast),
			Selectable: !isPast && !isBooked,
		}
		resp.Days = append(resp.Days, day)

		if day.Selectable && !isPending {
			resp.Summary.Available++
		}
		if isBooked {
			resp.Summary.Booked++
		}
		if isPending {
			resp.Summary.Pending++
		}
	}

	uc.logger.Info("GetAvailability: %04d-%02d available=%d, booked=%d, pending=%d",
		req.Year, int(req.Month), resp.Summary.Available, resp.Summary.Booked, resp.Summary.Pending)

	return resp, nil
}

// CheckDate проверяет доступность одной даты
func (uc *UseCase) CheckDate(_ context.Context, req *DateRequest) (*DateResponse, error) {
	if err := validateDate(req); err != nil {
		uc.logger.Warn("CheckDate: validation failed: %v", err)
		return nil, err
	}

	confirmed := uc.store.ListConfirmedDates()
	date := domain.DateOnly(req.Date)

	return &DateResponse{
		Date:      date,
		Bookable:  domain.IsBookable(date, uc.timeProvider.Now(), confirmed),
		Confirmed: domain.ContainsDay(confirmed, date),
		Pending:   domain.ContainsDay(uc.store.ListPendingDates(), date),
	}, nil
}

func dayStatus(booked, pending, past bool) DayStatus {
	switch {
	case booked:
		return DayBooked
	case pending:
		return DayPending
	case past:
		return DayPast
	default:
		return DayAvailable
	}
}
