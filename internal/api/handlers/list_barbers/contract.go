package list_barbers

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

type BarberService interface {
	List(ctx context.Context, includeInactive bool, actor models.Actor) ([]*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
