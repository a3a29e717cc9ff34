package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Metrics счетчики событий записей
type Metrics interface {
	IncAppointmentEvent(event string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
