package domain

import "errors"

var (
	// ErrInvalidStatus возвращается при неизвестном статусе записи
	ErrInvalidStatus = errors.New("domain: invalid appointment status")

	// ErrInvalidInterval возвращается при некорректном интервале работы
	ErrInvalidInterval = errors.New("domain: invalid opening interval")

	// ErrOverlappingIntervals возвращается, если интервалы одного дня пересекаются
	ErrOverlappingIntervals = errors.New("domain: overlapping opening intervals")

	// ErrUnknownDayCategory возвращается при неизвестной категории дня
	ErrUnknownDayCategory = errors.New("domain: unknown day category")
)
