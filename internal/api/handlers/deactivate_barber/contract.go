package deactivate_barber

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

type BarberService interface {
	Deactivate(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
