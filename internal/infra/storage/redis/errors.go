package redis

import "errors"

var (
	// ErrRead возвращается при ошибке чтения снимка из redis
	ErrRead = errors.New("redis.repository: failed to read snapshot")

	// ErrWrite возвращается при ошибке записи снимка в redis
	ErrWrite = errors.New("redis.repository: failed to write snapshot")
)
