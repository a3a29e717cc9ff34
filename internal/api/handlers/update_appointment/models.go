package update_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/update_appointment"
)

var errPartialStart = errors.New("date and time must be changed together")

// UpdateAppointmentRequest HTTP request model
// Отсутствующие поля не изменяются
type UpdateAppointmentRequest struct {
	BarberID        *string `json:"barberId,omitempty"`
	Service         *string `json:"service,omitempty"`
	Date            *string `json:"date,omitempty"` // "2025-03-10"
	Time            *string `json:"time,omitempty"` // "10:00"
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(
	id uuid.UUID,
	userID uuid.UUID,
	isAdmin bool,
	loc *time.Location,
) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:              id,
		UserID:          userID,
		IsAdmin:         isAdmin,
		Service:         r.Service,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}

	if r.BarberID != nil {
		barberID, err := uuid.Parse(*r.BarberID)
		if err != nil {
			return nil, fmt.Errorf("invalid barberId: %w", err)
		}
		req.BarberID = &barberID
	}

	if (r.Date == nil) != (r.Time == nil) {
		return nil, errPartialStart
	}
	if r.Date != nil {
		startAt, err := handlers.ParseStartAt(*r.Date, *r.Time, loc)
		if err != nil {
			return nil, err
		}
		req.StartAt = &startAt
	}

	return req, nil
}
