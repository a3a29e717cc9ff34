package get_available_slots

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvailabilityUnknown возвращается, когда хранилище недоступно.
	// Слоты в этом случае не показываются как свободные.
	ErrAvailabilityUnknown = errors.New("availability unknown")
)
