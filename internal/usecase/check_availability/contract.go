package check_availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListBlockingForDay(ctx context.Context, dayStart, dayEnd time.Time, barberID *uuid.UUID) ([]*domain.Appointment, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// EngineProvider выдает движок доступности с расписанием нужного барбера
type EngineProvider interface {
	Base() *availability.Engine
	ForBarber(ctx context.Context, barberID uuid.UUID) (*availability.Engine, error)
}

// Metrics счетчики решений о доступности
type Metrics interface {
	IncAvailabilityCheck(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
