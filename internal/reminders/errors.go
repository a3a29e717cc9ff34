package reminders

import "errors"

var (
	// ErrLoadAppointments возвращается, если записи на день не удалось получить
	ErrLoadAppointments = errors.New("reminders: failed to load appointments")

	// ErrLoadProfiles возвращается, если профили клиентов не удалось получить
	ErrLoadProfiles = errors.New("reminders: failed to load profiles")

	// ErrInvalidSpec возвращается при некорректном cron выражении
	ErrInvalidSpec = errors.New("reminders: invalid cron spec")
)
