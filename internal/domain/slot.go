package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// TimeSlot is a generated bookable window. It carries no date:
// the caller combines it with the target day.
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
	Label string
}

// DurationMinutes returns the slot length in minutes
func (s TimeSlot) DurationMinutes() int {
	return s.End.Minutes() - s.Start.Minutes()
}

// SlotAvailability is a slot evaluated for one barber on one day
type SlotAvailability struct {
	Slot      TimeSlot
	StartAt   time.Time
	Available bool
	Past      bool // Слот уже начался или в прошлом
	Conflict  bool // Пересекается с существующей записью
}

// BarberDayAvailability all slots of a day for one barber
type BarberDayAvailability struct {
	BarberID uuid.UUID
	Slots    []SlotAvailability
}

// AvailableCount returns the number of bookable slots
func (b *BarberDayAvailability) AvailableCount() int {
	count := 0
	for _, s := range b.Slots {
		if s.Available {
			count++
		}
	}
	return count
}
