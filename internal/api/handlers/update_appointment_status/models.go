package update_appointment_status

import (
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // canceled, confirmed, completed
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(actor models.Actor) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Actor:  actor,
		Status: r.Status,
	}
}
