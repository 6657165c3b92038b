package config

import "errors"

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalidValue возвращается при недопустимом значении параметра
	ErrInvalidValue = errors.New("config: invalid value")
)
