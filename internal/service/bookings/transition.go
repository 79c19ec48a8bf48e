package bookings

import "github.com/m04kA/SMC-BookingAvailability/internal/domain"

// Outcome результат попытки перехода статуса
type Outcome int

const (
	// OutcomeOK переход выполнен
	OutcomeOK Outcome = iota
	// OutcomeAlreadyTerminal бронирование уже подтверждено или отменено, состояние не изменилось
	OutcomeAlreadyTerminal
	// OutcomeNotFound бронирование с таким ID не существует
	OutcomeNotFound
)

// String возвращает имя результата для логов и API
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeAlreadyTerminal:
		return "already_terminal"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// TransitionResult результат Confirm/Cancel
// Booking заполнен для OutcomeOK и OutcomeAlreadyTerminal (копия актуального состояния)
type TransitionResult struct {
	Outcome Outcome
	Booking *domain.Booking
}

// OK возвращает true, если переход выполнен
func (r TransitionResult) OK() bool {
	return r.Outcome == OutcomeOK
}

// Err конвертирует результат в ошибку пакета (nil для OutcomeOK)
func (r TransitionResult) Err() error {
	switch r.Outcome {
	case OutcomeOK:
		return nil
	case OutcomeAlreadyTerminal:
		return ErrAlreadyTerminal
	default:
		return ErrBookingNotFound
	}
}
