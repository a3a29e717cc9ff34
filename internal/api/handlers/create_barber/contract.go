package create_barber

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

type BarberService interface {
	Create(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
