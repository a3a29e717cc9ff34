package availability

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ValidateAppointment проверяет бизнес-правила записи и возвращает все нарушения по порядку:
// барбер, дата и время, услуга, затем (если время задано) выходной день, часы работы и прошлое.
// Нулевой startAt означает "не выбрано".
func (e *Engine) ValidateAppointment(barberID uuid.UUID, startAt time.Time, service string) domain.ValidationResult {
	errs := make([]string, 0)

	if barberID == uuid.Nil {
		errs = append(errs, MsgBarberRequired)
	}

	if startAt.IsZero() {
		errs = append(errs, MsgDateTimeRequired)
	}

	if strings.TrimSpace(service) == "" {
		errs = append(errs, MsgServiceRequired)
	}

	if !startAt.IsZero() {
		local := startAt.In(e.location)

		if e.schedule.IsClosed(local.Weekday()) {
			if local.Weekday() == time.Sunday {
				errs = append(errs, MsgClosedOnSundays)
			} else {
				errs = append(errs, MsgClosedDay)
			}
		}

		if !e.IsWithinBusinessHours(local) {
			errs = append(errs, MsgOutsideBusinessHours)
		}

		// Запись должна начинаться строго позже текущего момента
		if !local.After(e.Now()) {
			errs = append(errs, MsgPastDate)
		}
	}

	return domain.ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
