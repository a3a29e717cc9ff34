package create_barber

import (
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

// CreateBarberRequest HTTP request model
type CreateBarberRequest struct {
	Name      string  `json:"name"`
	Specialty *string `json:"specialty,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в service request
func (r *CreateBarberRequest) ToServiceRequest(actor models.Actor) *models.CreateBarberRequest {
	return &models.CreateBarberRequest{
		Actor:     actor,
		Name:      r.Name,
		Specialty: r.Specialty,
	}
}
