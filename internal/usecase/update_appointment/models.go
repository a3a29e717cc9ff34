package update_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// EventUpdated событие для метрик
const EventUpdated = "updated"

// Request модель запроса на редактирование записи
// nil-поля не изменяются
type Request struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	IsAdmin bool

	BarberID        *uuid.UUID
	Service         *string
	StartAt         *time.Time
	DurationMinutes *int
	Notes           *string
}

// Response модель ответа с обновленной записью
type Response struct {
	Appointment *domain.Appointment
}

// reschedules возвращает true, если меняются поля, влияющие на занятость барбера
func (r *Request) reschedules() bool {
	return r.BarberID != nil || r.Service != nil || r.StartAt != nil || r.DurationMinutes != nil
}
