package create_appointment

import (
	"errors"
	"strings"
)

var (
	// ErrBarberNotFound возвращается, когда барбер не найден или неактивен
	ErrBarberNotFound = errors.New("create_appointment: barber not found")

	// ErrValidationFailed возвращается, когда запись нарушает бизнес-правила
	ErrValidationFailed = errors.New("create_appointment: validation failed")

	// ErrSlotTaken возвращается, когда время барбера уже занято
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrAvailabilityUnknown возвращается, когда не удалось проверить доступность
	ErrAvailabilityUnknown = errors.New("create_appointment: availability unknown")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// ValidationError содержит все нарушенные правила в порядке проверки
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
