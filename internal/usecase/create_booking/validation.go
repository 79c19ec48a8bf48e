package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BookingAvailability/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.ClientName)
	if name == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName must be at most %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if err := validatePhone(req.ClientPhone); err != nil {
		return err
	}

	address := strings.TrimSpace(req.ClientAddress)
	if address == "" {
		return fmt.Errorf("%w: clientAddress is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: clientAddress must be at most %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if req.ClientEmail != nil && strings.TrimSpace(*req.ClientEmail) != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(*req.ClientEmail)); err != nil {
			return fmt.Errorf("%w: clientEmail is not a valid e-mail address", ErrInvalidInput)
		}
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validatePhone проверяет, что в телефоне есть цифры для ссылки WhatsApp
func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return fmt.Errorf("%w: clientPhone contains invalid character %q", ErrInvalidInput, r)
		}
	}

	if digits < 8 {
		return fmt.Errorf("%w: clientPhone must contain at least 8 digits", ErrInvalidInput)
	}
	return nil
}
