package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Validate проверяет конфигурацию целиком и возвращает все ошибки сразу
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port %d out of range", c.Server.HTTPPort))
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		errs = append(errs, errors.New("database.host and database.dbname are required"))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if d := c.Schedule.SlotDurationMinutes; d < domain.MinDurationMinutes || d > domain.MaxDurationMinutes {
		errs = append(errs, fmt.Errorf("schedule.slot_duration_minutes %d out of range [%d, %d]",
			d, domain.MinDurationMinutes, domain.MaxDurationMinutes))
	}
	if _, err := c.BusinessHours(); err != nil {
		errs = append(errs, err)
	}

	if c.SMTP.Enabled && c.SMTP.Host == "" {
		errs = append(errs, errors.New("smtp.host is required when smtp is enabled"))
	}
	if c.Reminders.Enabled && !c.SMTP.Enabled {
		errs = append(errs, errors.New("reminders require smtp to be enabled"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, errors.Join(errs...))
}

// BusinessHours часы работы заведения; без секции [schedule.hours] - часы по умолчанию
func (c *Config) BusinessHours() (*domain.BusinessHoursSchedule, error) {
	if c.Schedule.Hours == nil {
		return domain.DefaultBusinessHours(), nil
	}

	byCategory := make(map[domain.DayCategory][]domain.OpenInterval, 3)
	categories := map[domain.DayCategory][]string{
		domain.CategoryWeekday:  c.Schedule.Hours.Weekday,
		domain.CategorySaturday: c.Schedule.Hours.Saturday,
		domain.CategorySunday:   c.Schedule.Hours.Sunday,
	}

	for category, raw := range categories {
		intervals, err := parseIntervals(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule.hours.%s: %v", ErrInvalidConfig, category, err)
		}
		byCategory[category] = intervals
	}

	schedule, err := domain.NewBusinessHoursSchedule(byCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule.hours: %v", ErrInvalidConfig, err)
	}
	return schedule, nil
}

// parseIntervals разбирает строки вида "08:00-12:00"
func parseIntervals(raw []string) ([]domain.OpenInterval, error) {
	intervals := make([]domain.OpenInterval, 0, len(raw))
	for _, item := range raw {
		start, end, ok := strings.Cut(strings.TrimSpace(item), "-")
		if !ok {
			return nil, fmt.Errorf("interval %q must look like HH:MM-HH:MM", item)
		}

		from, err := types.NewTimeStringFromString(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("interval %q: %v", item, err)
		}
		to, err := types.NewTimeStringFromString(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("interval %q: %v", item, err)
		}

		intervals = append(intervals, domain.OpenInterval{Start: from, End: to})
	}
	return intervals, nil
}
