package barbers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Barber, error)
	Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error)
	Update(ctx context.Context, barber *domain.Barber) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
