package get_availability

import (
	"fmt"
	"time"
)

const (
	minYear = 2000
	maxYear = 2100
)

// validateMonth проверяет запрошенный месяц
func validateMonth(req *MonthRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}
	return nil
}

// validateDate проверяет запрошенную дату
func validateDate(req *DateRequest) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
