package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyTerminal возвращается при попытке перехода из confirmed или cancelled
	ErrAlreadyTerminal = errors.New("bookings: booking is already confirmed or cancelled")

	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("bookings: invalid input data")
)
