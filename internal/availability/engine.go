// Package availability decides whether a barber can take an appointment:
// business hours, slot generation, validation and conflict detection.
// The engine does no I/O; callers load existing appointments and pass them in.
package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Engine движок доступности. Неизменяем после создания и безопасен для
// конкурентного использования.
type Engine struct {
	schedule        *domain.BusinessHoursSchedule
	location        *time.Location
	defaultDuration int
	timeProvider    TimeProvider
}

// NewEngine создает движок с расписанием работы и часовым поясом заведения.
// nil schedule означает стандартное расписание, nil location означает UTC.
func NewEngine(schedule *domain.BusinessHoursSchedule, location *time.Location, defaultDurationMinutes int) *Engine {
	if schedule == nil {
		schedule = domain.DefaultBusinessHours()
	}
	if location == nil {
		location = time.UTC
	}
	if defaultDurationMinutes <= 0 {
		defaultDurationMinutes = domain.DefaultSlotDurationMinutes
	}

	return &Engine{
		schedule:        schedule,
		location:        location,
		defaultDuration: defaultDurationMinutes,
		timeProvider:    &RealTimeProvider{},
	}
}

// WithTimeProvider возвращает копию движка с другим источником времени
func (e *Engine) WithTimeProvider(tp TimeProvider) *Engine {
	clone := *e
	clone.timeProvider = tp
	return &clone
}

// WithSchedule возвращает копию движка с другим расписанием (например, персональным расписанием барбера)
func (e *Engine) WithSchedule(schedule *domain.BusinessHoursSchedule) *Engine {
	clone := *e
	clone.schedule = schedule
	return &clone
}

// Location часовой пояс заведения
func (e *Engine) Location() *time.Location {
	return e.location
}

// Schedule расписание работы
func (e *Engine) Schedule() *domain.BusinessHoursSchedule {
	return e.schedule
}

// DefaultDuration длительность слота по умолчанию в минутах
func (e *Engine) DefaultDuration() int {
	return e.defaultDuration
}

// Now текущее время в часовом поясе заведения
func (e *Engine) Now() time.Time {
	return e.timeProvider.Now().In(e.location)
}

// ResolveDuration подставляет длительность по умолчанию вместо неположительной
func (e *Engine) ResolveDuration(durationMinutes int) int {
	if durationMinutes <= 0 {
		return e.defaultDuration
	}
	return durationMinutes
}

// StartOfDay возвращает полночь календарной даты date в часовом поясе заведения.
// Календарные поля date используются как есть, без перевода в другой пояс.
func (e *Engine) StartOfDay(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.location)
}

// DayBounds возвращает полуинтервал [начало дня, начало следующего дня)
func (e *Engine) DayBounds(date time.Time) (time.Time, time.Time) {
	start := e.StartOfDay(date)
	return start, start.AddDate(0, 0, 1)
}
