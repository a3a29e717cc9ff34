package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// События для метрик
const (
	EventCreated  = "created"
	EventRejected = "rejected"
	EventConflict = "conflict"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID      uuid.UUID // ID пользователя из заголовка X-User-ID
	BarberID        uuid.UUID
	Service         string
	StartAt         time.Time
	DurationMinutes int // 0 - длительность по умолчанию
	Notes           *string
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
