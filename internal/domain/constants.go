package domain

// Business validation constants
const (
	MaxNotesLength      = 500
	MaxClientNameLength = 200
	MaxAddressLength    = 300
	ShortIDLength       = 6
)

// Time format constants
const (
	DateFormat      = "2006-01-02" // YYYY-MM-DD
	MonthFormat     = "2006-01"    // YYYY-MM
	HumanDateFormat = "02/01/2006" // DD/MM/YYYY, как в сообщениях клиентам
)

// AllStatuses список всех статусов жизненного цикла
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(status string) (BookingStatus, bool) {
	s := BookingStatus(status)
	for _, valid := range AllStatuses {
		if s == valid {
			return s, true
		}
	}
	return "", false
}
