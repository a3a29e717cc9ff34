package get_available_slots

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string        `json:"date"`
	DayName         string        `json:"dayName"`
	DurationMinutes int           `json:"durationMinutes"`
	AvailableCount  int           `json:"availableCount"`
	NextOpening     *time.Time    `json:"nextOpening,omitempty"`
	Barbers         []BarberSlots `json:"barbers"`
}

// BarberSlots слоты одного барбера
type BarberSlots struct {
	BarberID  uuid.UUID `json:"barberId"`
	Name      string    `json:"name"`
	Specialty *string   `json:"specialty,omitempty"`
	Slots     []Slot    `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	StartTime string    `json:"startTime"` // "08:00"
	EndTime   string    `json:"endTime"`   // "08:30"
	Label     string    `json:"label"`
	StartAt   time.Time `json:"startAt"`
	Available bool      `json:"available"`
	Past      bool      `json:"past"`
	Conflict  bool      `json:"conflict"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(date time.Time, barberID *uuid.UUID, durationStr string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{
		Date:     date,
		BarberID: barberID,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	barbers := make([]BarberSlots, 0, len(resp.Barbers))
	for _, b := range resp.Barbers {
		slots := make([]Slot, len(b.Slots))
		for i, s := range b.Slots {
			slots[i] = Slot{
				StartTime: s.Slot.Start.String(),
				EndTime:   s.Slot.End.String(),
				Label:     s.Slot.Label,
				StartAt:   s.StartAt,
				Available: s.Available,
				Past:      s.Past,
				Conflict:  s.Conflict,
			}
		}

		barbers = append(barbers, BarberSlots{
			BarberID:  b.Barber.ID,
			Name:      b.Barber.Name,
			Specialty: b.Barber.Specialty,
			Slots:     slots,
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DayName:         resp.DayName,
		DurationMinutes: resp.DurationMinutes,
		AvailableCount:  resp.AvailableCount(),
		NextOpening:     resp.NextOpening,
		Barbers:         barbers,
	}
}
