package jsonfile

import "errors"

var (
	// ErrRead возвращается при ошибке чтения файла снимка
	ErrRead = errors.New("jsonfile.repository: failed to read snapshot")

	// ErrWrite возвращается при ошибке записи файла снимка
	ErrWrite = errors.New("jsonfile.repository: failed to write snapshot")
)
