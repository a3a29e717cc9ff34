package update_barber

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

type BarberService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateBarberRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
