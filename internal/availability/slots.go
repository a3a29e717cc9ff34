package availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// GenerateTimeSlots генерирует слоты на календарную дату date.
// Для каждого интервала работы идем от начала с шагом durationMinutes, пока
// начало слота раньше конца интервала. Конец последнего слота может выходить
// за конец интервала (например, 11:50-12:20 при 25-минутных слотах).
// Слот, который перешел бы через полночь, не генерируется.
func (e *Engine) GenerateTimeSlots(date time.Time, durationMinutes int) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDuration, durationMinutes)
	}

	intervals := e.schedule.IntervalsFor(date.Weekday())
	slots := make([]domain.TimeSlot, 0)

	for _, interval := range intervals {
		current := interval.Start

		for current.IsBefore(interval.End) {
			end, err := current.AddMinutes(durationMinutes)
			if err != nil {
				if errors.Is(err, types.ErrTimeOverflow) {
					break
				}
				return nil, err
			}

			slots = append(slots, domain.TimeSlot{
				Start: current,
				End:   end,
				Label: current.String(),
			})
			current = end
		}
	}

	return slots, nil
}
