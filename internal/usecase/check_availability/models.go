package check_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Исходы проверки для метрик
const (
	OutcomeAvailable = "available"
	OutcomeConflict  = "conflict"
	OutcomeInvalid   = "invalid"
	OutcomeUnknown   = "unknown"
)

// Request модель запроса на проверку доступности
type Request struct {
	BarberID        uuid.UUID
	Service         string
	StartAt         time.Time  // Нулевое значение - время не выбрано
	DurationMinutes int        // 0 - длительность по умолчанию
	ExcludeID       *uuid.UUID // Запись, которую переносят (не конфликтует сама с собой)
}

// Response модель ответа
type Response struct {
	Decision        domain.Decision
	DurationMinutes int
	DayName         string // Пусто, если время не выбрано
}
