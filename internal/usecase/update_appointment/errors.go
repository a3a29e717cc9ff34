package update_appointment

import (
	"errors"
	"strings"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец записи и не админ
	ErrAccessDenied = errors.New("update_appointment: access denied")

	// ErrNotEditable возвращается, когда запись завершена или отменена
	ErrNotEditable = errors.New("update_appointment: appointment cannot be edited")

	// ErrBarberNotFound возвращается, когда новый барбер не найден или неактивен
	ErrBarberNotFound = errors.New("update_appointment: barber not found")

	// ErrValidationFailed возвращается, когда новые данные нарушают бизнес-правила
	ErrValidationFailed = errors.New("update_appointment: validation failed")

	// ErrSlotTaken возвращается, когда новое время барбера уже занято
	ErrSlotTaken = errors.New("update_appointment: slot already taken")

	// ErrAvailabilityUnknown возвращается, когда не удалось проверить доступность
	ErrAvailabilityUnknown = errors.New("update_appointment: availability unknown")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
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
