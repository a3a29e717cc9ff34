package check_availability

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvailabilityUnknown возвращается, когда хранилище недоступно.
	// Запись в этом случае не считается доступной.
	ErrAvailabilityUnknown = errors.New("availability unknown")
)
