package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	BarberID        string  `json:"barberId"`
	Service         string  `json:"service"`
	Date            string  `json:"date"` // "2025-03-10"
	Time            string  `json:"time"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID uuid.UUID, loc *time.Location) (*createAppointment.Request, error) {
	var barberID uuid.UUID
	if r.BarberID != "" {
		id, err := uuid.Parse(r.BarberID)
		if err != nil {
			return nil, fmt.Errorf("invalid barberId: %w", err)
		}
		barberID = id
	}

	startAt, err := handlers.ParseStartAt(r.Date, r.Time, loc)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		CustomerID:      customerID,
		BarberID:        barberID,
		Service:         r.Service,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}, nil
}
