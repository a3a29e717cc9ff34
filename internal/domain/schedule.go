package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// DayCategory groups days of week that share opening hours
type DayCategory string

const (
	CategoryWeekday  DayCategory = "weekday"
	CategorySaturday DayCategory = "saturday"
	CategorySunday   DayCategory = "sunday"
)

// CategoryOf returns the category of a day of week
func CategoryOf(day time.Weekday) DayCategory {
	switch day {
	case time.Saturday:
		return CategorySaturday
	case time.Sunday:
		return CategorySunday
	default:
		return CategoryWeekday
	}
}

// OpenInterval is a half-open opening interval [Start, End)
type OpenInterval struct {
	Start types.TimeString
	End   types.TimeString
}

// Contains reports whether the minute of day lies in [Start, End)
func (i OpenInterval) Contains(minuteOfDay int) bool {
	return minuteOfDay >= i.Start.Minutes() && minuteOfDay < i.End.Minutes()
}

func (i OpenInterval) validate() error {
	if err := i.Start.Validate(); err != nil {
		return fmt.Errorf("%w: start %q: %v", ErrInvalidInterval, i.Start, err)
	}
	if err := i.End.Validate(); err != nil {
		return fmt.Errorf("%w: end %q: %v", ErrInvalidInterval, i.End, err)
	}
	if !i.Start.IsBefore(i.End) {
		return fmt.Errorf("%w: %s-%s start must be before end", ErrInvalidInterval, i.Start, i.End)
	}
	return nil
}

// BusinessHoursSchedule is an immutable table of opening intervals per day of week.
// Intervals of one day are sorted by start and never overlap.
type BusinessHoursSchedule struct {
	days [7][]OpenInterval
}

// NewBusinessHoursSchedule builds a schedule from day categories.
// A category missing from the map is closed.
func NewBusinessHoursSchedule(byCategory map[DayCategory][]OpenInterval) (*BusinessHoursSchedule, error) {
	byWeekday := make(map[time.Weekday][]OpenInterval, 7)
	for category, intervals := range byCategory {
		switch category {
		case CategoryWeekday:
			for day := time.Monday; day <= time.Friday; day++ {
				byWeekday[day] = intervals
			}
		case CategorySaturday:
			byWeekday[time.Saturday] = intervals
		case CategorySunday:
			byWeekday[time.Sunday] = intervals
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownDayCategory, category)
		}
	}
	return NewWeeklySchedule(byWeekday)
}

// NewWeeklySchedule builds a schedule from per-weekday intervals
// (e.g. rows of a per-barber schedule table).
func NewWeeklySchedule(byWeekday map[time.Weekday][]OpenInterval) (*BusinessHoursSchedule, error) {
	s := &BusinessHoursSchedule{}
	for day, intervals := range byWeekday {
		if day < time.Sunday || day > time.Saturday {
			return nil, fmt.Errorf("%w: weekday %d", ErrInvalidInterval, day)
		}

		sorted := make([]OpenInterval, len(intervals))
		copy(sorted, intervals)
		for _, interval := range sorted {
			if err := interval.validate(); err != nil {
				return nil, err
			}
		}
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].Start.IsBefore(sorted[j].Start)
		})
		for i := 1; i < len(sorted); i++ {
			// Соседние интервалы могут касаться границей, но не пересекаться
			if sorted[i].Start.IsBefore(sorted[i-1].End) {
				return nil, fmt.Errorf("%w: %s %s-%s and %s-%s", ErrOverlappingIntervals, day,
					sorted[i-1].Start, sorted[i-1].End, sorted[i].Start, sorted[i].End)
			}
		}
		s.days[day] = sorted
	}
	return s, nil
}

// DefaultBusinessHours returns the shop's opening hours:
// Monday-Friday 08:00-12:00 and 13:00-17:00, Saturday 08:00-20:00, Sunday closed.
func DefaultBusinessHours() *BusinessHoursSchedule {
	s, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
		CategoryWeekday: {
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		},
		CategorySaturday: {
			{Start: "08:00", End: "20:00"},
		},
		CategorySunday: nil,
	})
	if err != nil {
		panic(err)
	}
	return s
}

// IntervalsFor returns a copy of the opening intervals of a day of week
func (s *BusinessHoursSchedule) IntervalsFor(day time.Weekday) []OpenInterval {
	if day < time.Sunday || day > time.Saturday {
		return nil
	}
	out := make([]OpenInterval, len(s.days[day]))
	copy(out, s.days[day])
	return out
}

// IsClosed returns true if there are no opening intervals on the day
func (s *BusinessHoursSchedule) IsClosed(day time.Weekday) bool {
	if day < time.Sunday || day > time.Saturday {
		return true
	}
	return len(s.days[day]) == 0
}

// IsOpenAt reports whether the minute of day falls into an opening interval of the day
func (s *BusinessHoursSchedule) IsOpenAt(day time.Weekday, minuteOfDay int) bool {
	if s.IsClosed(day) {
		return false
	}
	for _, interval := range s.days[day] {
		if interval.Contains(minuteOfDay) {
			return true
		}
	}
	return false
}
