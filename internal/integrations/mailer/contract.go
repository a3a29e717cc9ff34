package mailer

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Sender отправляет одно письмо
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ProfileRepository источник контактных данных клиента
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// Metrics счетчики отправленных уведомлений
type Metrics interface {
	IncNotification(kind string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
