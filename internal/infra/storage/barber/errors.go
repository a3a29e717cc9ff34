package barber

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	// ErrScheduleNotFound возвращается, когда у барбера нет персонального расписания
	ErrScheduleNotFound = errors.New("barber.repository: schedule not found")

	// ErrInvalidSchedule возвращается, если строки расписания в БД некорректны
	ErrInvalidSchedule = errors.New("barber.repository: invalid schedule")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("barber.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("barber.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("barber.repository: failed to scan row")
)
