package barbers

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrAccessDenied возвращается, когда операция доступна только админу
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
