package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultTimezone            = "UTC"
)

// Business validation constants
const (
	MinDurationMinutes   = 5
	MaxDurationMinutes   = 480 // 8 hours
	MaxNotesLength       = 500
	MaxServiceNameLength = 120
	NextOpeningLookahead = 7 // days
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, при которых запись занимает время барбера
// Только они учитываются при проверке конфликтов
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}

// InactiveStatuses статусы, которые никогда не блокируют слот
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCanceled,
}

// AllStatuses все допустимые статусы записи
var AllStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
}
