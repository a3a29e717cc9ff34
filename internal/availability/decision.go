package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// IsBarberAvailable барбер свободен, если время в часах работы и нет конфликта
func (e *Engine) IsBarberAvailable(req domain.AppointmentRequest, existing []*domain.Appointment) bool {
	if !e.IsWithinBusinessHours(req.StartAt) {
		return false
	}
	return !HasConflict(req.BarberID, req.StartAt, e.ResolveDuration(req.DurationMinutes), e.ResolveDurations(existing), req.ExcludeID)
}

// Check объединяет валидацию и проверку конфликта.
// Если валидация не прошла, конфликт не проверяется.
func (e *Engine) Check(req domain.AppointmentRequest, existing []*domain.Appointment) domain.Decision {
	validation := e.ValidateAppointment(req.BarberID, req.StartAt, req.Service)
	if !validation.Valid {
		return domain.Decision{Validation: validation}
	}

	conflict := HasConflict(req.BarberID, req.StartAt, e.ResolveDuration(req.DurationMinutes), e.ResolveDurations(existing), req.ExcludeID)

	return domain.Decision{
		Validation: validation,
		Conflict:   conflict,
		Available:  !conflict,
	}
}

// DayAvailability оценивает все слоты дня для каждого барбера по одному снимку записей.
// Слот доступен, если он еще не начался и не пересекается с блокирующей записью.
func (e *Engine) DayAvailability(
	date time.Time,
	durationMinutes int,
	barberIDs []uuid.UUID,
	existing []*domain.Appointment,
) ([]domain.BarberDayAvailability, error) {
	duration := e.ResolveDuration(durationMinutes)

	// 1. Генерируем слоты один раз на всех барберов
	slots, err := e.GenerateTimeSlots(date, duration)
	if err != nil {
		return nil, err
	}

	now := e.Now()
	existing = e.ResolveDurations(existing)
	result := make([]domain.BarberDayAvailability, 0, len(barberIDs))

	// 2. Оцениваем каждый слот для каждого барбера
	for _, barberID := range barberIDs {
		day := domain.BarberDayAvailability{
			BarberID: barberID,
			Slots:    make([]domain.SlotAvailability, 0, len(slots)),
		}

		for _, slot := range slots {
			startAt := slot.Start.On(date, e.location)
			past := !startAt.After(now)
			conflict := HasConflict(barberID, startAt, duration, existing, nil)

			day.Slots = append(day.Slots, domain.SlotAvailability{
				Slot:      slot,
				StartAt:   startAt,
				Available: !past && !conflict,
				Past:      past,
				Conflict:  conflict,
			})
		}

		result = append(result, day)
	}

	return result, nil
}

// NextOpening возвращает начало ближайшего слота не раньше from в пределах недели.
// ok=false, если за неделю нет ни одного рабочего интервала.
func (e *Engine) NextOpening(from time.Time, durationMinutes int) (time.Time, bool, error) {
	duration := e.ResolveDuration(durationMinutes)
	local := from.In(e.location)

	for offset := 0; offset < domain.NextOpeningLookahead; offset++ {
		day := e.StartOfDay(local).AddDate(0, 0, offset)

		slots, err := e.GenerateTimeSlots(day, duration)
		if err != nil {
			return time.Time{}, false, err
		}

		for _, slot := range slots {
			startAt := slot.Start.On(day, e.location)
			if !startAt.Before(local) {
				return startAt, true, nil
			}
		}
	}

	return time.Time{}, false, nil
}
