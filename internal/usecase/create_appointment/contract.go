package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	ListBlockingForDay(ctx context.Context, dayStart, dayEnd time.Time, barberID *uuid.UUID) ([]*domain.Appointment, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// ServiceCatalog каталог услуг барбершопа
type ServiceCatalog interface {
	GetServiceByName(ctx context.Context, name string) (*domain.Product, error)
}

// EngineProvider выдает движок доступности с расписанием нужного барбера
type EngineProvider interface {
	Base() *availability.Engine
	ForBarber(ctx context.Context, barberID uuid.UUID) (*availability.Engine, error)
}

// Notifier отправляет подтверждение записи клиенту
type Notifier interface {
	NotifyAppointment(ctx context.Context, appt *domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
