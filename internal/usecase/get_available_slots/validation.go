package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.BarberID != nil && *req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberId must not be empty", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	return nil
}
