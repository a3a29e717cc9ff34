package reminders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentRepository источник записей на день
type AppointmentRepository interface {
	ListBlockingForDay(ctx context.Context, dayStart, dayEnd time.Time, barberID *uuid.UUID) ([]*domain.Appointment, error)
}

// ProfileRepository контактные данные клиентов пачкой
type ProfileRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Profile, error)
}

// Notifier отправляет одно напоминание клиенту
type Notifier interface {
	SendReminder(ctx context.Context, profile *domain.Profile, appts []*domain.Appointment) error
}

// Clock текущее время и границы дня в часовом поясе заведения
type Clock interface {
	Now() time.Time
	DayBounds(date time.Time) (time.Time, time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
