package availability

import "time"

// IsWithinBusinessHours проверяет, что момент t попадает в часы работы.
// t переводится в часовой пояс заведения и обрезается до минуты.
func (e *Engine) IsWithinBusinessHours(t time.Time) bool {
	local := t.In(e.location)
	return e.schedule.IsOpenAt(local.Weekday(), minuteOfDay(local))
}

// IsClosedOn проверяет, что в день момента t заведение не работает
func (e *Engine) IsClosedOn(t time.Time) bool {
	return e.schedule.IsClosed(t.In(e.location).Weekday())
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
