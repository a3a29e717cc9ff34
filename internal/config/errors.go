package config

import "errors"

var (
	// ErrDecode возвращается, если файл конфигурации не удалось прочитать
	ErrDecode = errors.New("config: decode failed")

	// ErrEnvFile возвращается при некорректном .env файле
	ErrEnvFile = errors.New("config: invalid env file")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid value")
)
