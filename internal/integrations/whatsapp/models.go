package whatsapp

// Message сообщение для шлюза WhatsApp
type Message struct {
	To   string `json:"to"`   // номер только из цифр, с кодом страны
	Text string `json:"text"`
}

// SendResponse ответ шлюза на отправку
type SendResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Результаты отправки для метрик
const (
	ResultSent   = "sent"
	ResultLink   = "link"
	ResultFailed = "failed"
)
