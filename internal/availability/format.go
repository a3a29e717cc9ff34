package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// DayName возвращает название дня недели на испанском в часовом поясе заведения
func (e *Engine) DayName(t time.Time) string {
	return dayNames[t.In(e.location).Weekday()]
}

// CombineDateTime объединяет календарную дату и время суток в момент времени заведения
func (e *Engine) CombineDateTime(date time.Time, at types.TimeString) (time.Time, error) {
	if err := at.Validate(); err != nil {
		return time.Time{}, err
	}
	return at.On(date, e.location), nil
}
