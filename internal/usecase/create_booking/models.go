package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	Date          time.Time // Дата бронирования (без времени)
	ServiceID     string    // ID услуги из каталога
	ClientName    string
	ClientPhone   string  // Телефон/WhatsApp
	ClientEmail   *string // E-mail (опционально)
	ClientAddress string
	Notes         *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID           string
	ShortID      string    // Последние 6 символов ID, которые видит администратор
	Date         time.Time // Дата бронирования
	ServiceID    string
	ServiceName  string
	Status       string
	WhatsappSent bool
	CreatedAt    time.Time

	// Ссылка wa.me с готовым текстом заявки, клиент открывает её сам
	WhatsappURL string
}
