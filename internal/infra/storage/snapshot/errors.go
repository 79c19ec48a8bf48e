package snapshot

import "errors"

var (
	// ErrDecode возвращается, когда сохранённый набор не удалось разобрать
	ErrDecode = errors.New("snapshot: failed to decode bookings")

	// ErrEncode возвращается при ошибке сериализации набора
	ErrEncode = errors.New("snapshot: failed to encode bookings")
)
