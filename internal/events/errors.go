package events

import "errors"

var (
	// ErrQueueFull возвращается, когда очередь диспетчера переполнена и событие отброшено
	ErrQueueFull = errors.New("events: dispatcher queue is full")

	// ErrClosed возвращается при публикации в остановленный диспетчер
	ErrClosed = errors.New("events: dispatcher is closed")
)
