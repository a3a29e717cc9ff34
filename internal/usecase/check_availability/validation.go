package check_availability

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest проверяет технические параметры запроса.
// Бизнес-правила проверяет движок и возвращает их как данные.
func validateRequest(req *Request) error {
	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.ExcludeID != nil && *req.ExcludeID == uuid.Nil {
		return fmt.Errorf("%w: excludeId must not be empty", ErrInvalidInput)
	}

	return nil
}
