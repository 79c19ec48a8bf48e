package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
	"github.com/m04kA/SMC-BookingAvailability/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings"
	"github.com/m04kA/SMC-BookingAvailability/internal/service/bookings/models"
	"github.com/m04kA/SMC-BookingAvailability/pkg/ptr"
)

// UseCase use case для создания заявки на уборку
type UseCase struct {
	store        BookingStore
	catalog      ServiceCatalog
	whatsappTo   string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// whatsappTo номер администратора, на который клиент отправляет заявку
func NewUseCase(
	store BookingStore,
	catalog ServiceCatalog,
	whatsappTo string,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		whatsappTo:   whatsappTo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 2. Услуга должна быть в каталоге
	service, ok := uc.catalog.Get(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateBooking: service %s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Дата не в прошлом и не занята подтверждённым бронированием
	now := uc.timeProvider.Now()
	if domain.IsDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}
	if !domain.IsBookable(req.Date, now, uc.store.ListConfirmedDates()) {
		uc.logger.Warn("CreateBooking: date %s is already booked", req.Date.Format(domain.DateFormat))
		return nil, ErrDateUnavailable
	}

	// 4. Создаем заявку в статусе pending
	booking, err := uc.store.Create(ctx, &models.CreateBookingRequest{
		Date:          req.Date,
		ServiceID:     service.ID,
		ServiceName:   service.Title,
		ClientName:    req.ClientName,
		ClientPhone:   req.ClientPhone,
		ClientEmail:   trimOptional(req.ClientEmail),
		ClientAddress: req.ClientAddress,
		Notes:         trimOptional(req.Notes),
	})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 5. Ссылка WhatsApp с текстом заявки
	link, err := whatsapp.BuildLink(uc.destination(), whatsapp.FormatBookingRequest(booking, service))
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to build whatsapp link for booking id=%s: %v", booking.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	return &Response{
		ID:           booking.ID,
		ShortID:      booking.ShortID(),
		Date:         booking.Date,
		ServiceID:    booking.ServiceID,
		ServiceName:  booking.ServiceName,
		Status:       string(booking.Status),
		WhatsappSent: booking.WhatsappSent,
		CreatedAt:    booking.CreatedAt,
		WhatsappURL:  link,
	}, nil
}

func (uc *UseCase) destination() string {
	if uc.whatsappTo == "" {
		return whatsapp.DefaultDestination
	}
	return uc.whatsappTo
}

// trimOptional убирает пробелы, пустое значение превращается в nil
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr.NonEmpty(strings.TrimSpace(*s))
}
