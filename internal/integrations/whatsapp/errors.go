package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrUnauthorized возвращается, когда шлюз отклонил токен
	ErrUnauthorized = errors.New("whatsapp client: unauthorized")

	// ErrInvalidNumber возвращается, когда в номере нет ни одной цифры
	ErrInvalidNumber = errors.New("whatsapp: phone number has no digits")
)
