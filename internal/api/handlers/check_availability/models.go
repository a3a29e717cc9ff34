package check_availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-BarberBooking/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
// Пустые barberId, date и time допустимы: их отклонит валидатор с понятным сообщением
type CheckAvailabilityRequest struct {
	BarberID        string  `json:"barberId"`
	Service         string  `json:"service"`
	Date            string  `json:"date"` // "2025-03-10"
	Time            string  `json:"time"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	ExcludeID       *string `json:"excludeId,omitempty"` // Запись, которую переносят
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available       bool     `json:"available"`
	Valid           bool     `json:"valid"`
	Conflict        bool     `json:"conflict"`
	Errors          []string `json:"errors"`
	DayName         string   `json:"dayName,omitempty"`
	DurationMinutes int      `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest(loc *time.Location) (*checkAvailability.Request, error) {
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

	req := &checkAvailability.Request{
		BarberID:        barberID,
		Service:         r.Service,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
	}

	if r.ExcludeID != nil && *r.ExcludeID != "" {
		excludeID, err := uuid.Parse(*r.ExcludeID)
		if err != nil {
			return nil, fmt.Errorf("invalid excludeId: %w", err)
		}
		req.ExcludeID = &excludeID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	errs := resp.Decision.Validation.Errors
	if errs == nil {
		errs = []string{}
	}

	return &CheckAvailabilityResponse{
		Available:       resp.Decision.Available,
		Valid:           resp.Decision.Validation.Valid,
		Conflict:        resp.Decision.Conflict,
		Errors:          errs,
		DayName:         resp.DayName,
		DurationMinutes: resp.DurationMinutes,
	}
}
