package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBusinessHours(t *testing.T) {
	s := DefaultBusinessHours()

	for day := time.Monday; day <= time.Friday; day++ {
		assert.Equal(t, []OpenInterval{
			{Start: "08:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		}, s.IntervalsFor(day), day.String())
	}
	assert.Equal(t, []OpenInterval{{Start: "08:00", End: "20:00"}}, s.IntervalsFor(time.Saturday))
	assert.True(t, s.IsClosed(time.Sunday))
	assert.Empty(t, s.IntervalsFor(time.Sunday))
}

func TestNewBusinessHoursSchedule(t *testing.T) {
	t.Run("sorts intervals", func(t *testing.T) {
		s, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
			CategoryWeekday: {
				{Start: "14:00", End: "18:00"},
				{Start: "09:00", End: "13:00"},
			},
		})
		require.NoError(t, err)
		intervals := s.IntervalsFor(time.Wednesday)
		require.Len(t, intervals, 2)
		assert.Equal(t, OpenInterval{Start: "09:00", End: "13:00"}, intervals[0])
		assert.True(t, s.IsClosed(time.Saturday))
	})

	t.Run("touching intervals are allowed", func(t *testing.T) {
		_, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
			CategorySaturday: {
				{Start: "08:00", End: "12:00"},
				{Start: "12:00", End: "16:00"},
			},
		})
		assert.NoError(t, err)
	})

	t.Run("overlapping", func(t *testing.T) {
		_, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
			CategoryWeekday: {
				{Start: "08:00", End: "12:30"},
				{Start: "12:00", End: "16:00"},
			},
		})
		assert.ErrorIs(t, err, ErrOverlappingIntervals)
	})

	t.Run("start not before end", func(t *testing.T) {
		_, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
			CategoryWeekday: {{Start: "12:00", End: "12:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
			CategoryWeekday: {{Start: "8:00", End: "12:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := NewBusinessHoursSchedule(map[DayCategory][]OpenInterval{
			"holiday": {{Start: "08:00", End: "12:00"}},
		})
		assert.ErrorIs(t, err, ErrUnknownDayCategory)
	})
}

func TestSchedule_IntervalsForReturnsCopy(t *testing.T) {
	s := DefaultBusinessHours()
	intervals := s.IntervalsFor(time.Monday)
	intervals[0].Start = "00:00"

	assert.Equal(t, OpenInterval{Start: "08:00", End: "12:00"}, s.IntervalsFor(time.Monday)[0])
}

func TestSchedule_IsOpenAt(t *testing.T) {
	s := DefaultBusinessHours()

	assert.True(t, s.IsOpenAt(time.Monday, 8*60))
	assert.False(t, s.IsOpenAt(time.Monday, 12*60))
	assert.True(t, s.IsOpenAt(time.Saturday, 19*60+59))
	assert.False(t, s.IsOpenAt(time.Sunday, 10*60))
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, CategoryWeekday, CategoryOf(time.Monday))
	assert.Equal(t, CategoryWeekday, CategoryOf(time.Friday))
	assert.Equal(t, CategorySaturday, CategoryOf(time.Saturday))
	assert.Equal(t, CategorySunday, CategoryOf(time.Sunday))
}

func TestAppointment(t *testing.T) {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	a := &Appointment{StartAt: start, Status: StatusScheduled}
	assert.Equal(t, start.Add(30*time.Minute), a.EndAt())
	assert.True(t, a.IsBlocking())

	a.DurationMinutes = 45
	assert.Equal(t, start.Add(45*time.Minute), a.EndAt())

	a.Status = StatusCanceled
	assert.False(t, a.IsBlocking())
	assert.False(t, a.CanBeCancelled())

	status, err := ParseAppointmentStatus("confirmed")
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	_, err = ParseAppointmentStatus("pending")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
