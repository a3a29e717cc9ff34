package update_barber

import (
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

// UpdateBarberRequest HTTP request model, все поля необязательны
type UpdateBarberRequest struct {
	Name      *string `json:"name,omitempty"`
	Specialty *string `json:"specialty,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в service request
func (r *UpdateBarberRequest) ToServiceRequest(actor models.Actor) *models.UpdateBarberRequest {
	return &models.UpdateBarberRequest{
		Actor:     actor,
		Name:      r.Name,
		Specialty: r.Specialty,
		Active:    r.Active,
	}
}
