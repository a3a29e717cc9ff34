package update_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует технические параметры запроса
func validateRequest(req *Request) error {
	if req.ID == uuid.Nil {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}

	if req.UserID == uuid.Nil {
		return fmt.Errorf("%w: user is required", ErrInvalidInput)
	}

	if !req.reschedules() && req.Notes == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if req.Service != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Service)) > domain.MaxServiceNameLength {
		return fmt.Errorf("%w: service name exceeds %d characters", ErrInvalidInput, domain.MaxServiceNameLength)
	}

	if req.DurationMinutes != nil &&
		(*req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
