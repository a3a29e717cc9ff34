package availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// HasConflict проверяет, пересекается ли интервал [startAt, startAt+duration)
// с блокирующей записью того же барбера. Запись с excludeID пропускается.
// Граничащие интервалы (одна запись заканчивается там, где начинается другая) не пересекаются.
func HasConflict(
	barberID uuid.UUID,
	startAt time.Time,
	durationMinutes int,
	existing []*domain.Appointment,
	excludeID *uuid.UUID,
) bool {
	end := startAt.Add(time.Duration(durationMinutes) * time.Minute)

	for _, appt := range existing {
		if blocks(appt, barberID, excludeID) && overlaps(startAt, end, appt) {
			return true
		}
	}
	return false
}

// Conflicts возвращает все блокирующие записи, пересекающиеся с интервалом
func Conflicts(
	barberID uuid.UUID,
	startAt time.Time,
	durationMinutes int,
	existing []*domain.Appointment,
	excludeID *uuid.UUID,
) []*domain.Appointment {
	end := startAt.Add(time.Duration(durationMinutes) * time.Minute)

	result := make([]*domain.Appointment, 0)
	for _, appt := range existing {
		if blocks(appt, barberID, excludeID) && overlaps(startAt, end, appt) {
			result = append(result, appt)
		}
	}
	return result
}

func blocks(appt *domain.Appointment, barberID uuid.UUID, excludeID *uuid.UUID) bool {
	if appt == nil || appt.BarberID != barberID || !appt.IsBlocking() {
		return false
	}
	if excludeID != nil && appt.ID == *excludeID {
		return false
	}
	return true
}

// Интервалы пересекаются, только если начало одного строго раньше конца другого и наоборот
func overlaps(start, end time.Time, appt *domain.Appointment) bool {
	return start.Before(appt.EndAt()) && appt.StartAt.Before(end)
}

// ResolveDurations возвращает записи, у которых нулевая длительность заменена
// длительностью по умолчанию движка. Исходные записи не изменяются
func (e *Engine) ResolveDurations(existing []*domain.Appointment) []*domain.Appointment {
	resolved := make([]*domain.Appointment, 0, len(existing))
	for _, appt := range existing {
		if appt == nil || appt.DurationMinutes > 0 {
			resolved = append(resolved, appt)
			continue
		}
		withDefault := *appt
		withDefault.DurationMinutes = e.defaultDuration
		resolved = append(resolved, &withDefault)
	}
	return resolved
}
