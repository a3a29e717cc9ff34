package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда время выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате "HH:MM" без даты и часового пояса.
// Допустимый диапазон 00:00..24:00, где "24:00" обозначает конец суток.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes)
}

// FromMinutes создает TimeString из количества минут от начала суток
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// MustTimeString паникует при некорректном значении, используется для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes возвращает количество минут от начала суток
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		return -1
	}
	return m
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	return FromMinutes(base + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// On возвращает момент времени t в указанную дату и часовом поясе.
// Время собирается по настенным часам, поэтому переход на летнее время не сдвигает его
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	minutes := t.Minutes()
	return time.Date(y, m, d, minutes/minutesPerHour, minutes%minutesPerHour, 0, 0, loc)
}

// Scan реализует sql.Scanner для колонок типа TIME
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}

	ts, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if hours < 0 || minutes < 0 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	total := hours*minutesPerHour + minutes
	if total > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return total, nil
}
