package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BarberScheduleRepository интерфейс репозитория персональных расписаний
type BarberScheduleRepository interface {
	GetSchedule(ctx context.Context, barberID uuid.UUID) (*domain.BusinessHoursSchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
