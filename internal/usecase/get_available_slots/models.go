package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модель запроса на получение слотов дня
type Request struct {
	Date            time.Time  // Календарная дата (время игнорируется)
	BarberID        *uuid.UUID // Только этот барбер; nil - все активные
	DurationMinutes int        // 0 - длительность по умолчанию
}

// Response модель ответа со слотами по барберам
type Response struct {
	Date            time.Time
	DayName         string
	DurationMinutes int
	Barbers         []BarberSlots
	NextOpening     *time.Time // Ближайший рабочий слот, если в этот день свободных слотов нет
}

// BarberSlots слоты одного барбера
type BarberSlots struct {
	Barber *domain.Barber
	Slots  []domain.SlotAvailability
}

// AvailableCount количество свободных слотов по всем барберам
func (r *Response) AvailableCount() int {
	count := 0
	for _, b := range r.Barbers {
		for _, s := range b.Slots {
			if s.Available {
				count++
			}
		}
	}
	return count
}
