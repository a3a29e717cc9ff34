package schedule

import "errors"

var (
	// ErrScheduleUnavailable возвращается, если не удалось загрузить расписание барбера
	ErrScheduleUnavailable = errors.New("schedule: barber schedule unavailable")
)
