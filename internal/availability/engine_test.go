package availability

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var shopLocation = time.FixedZone("COT", -5*60*60)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, shopLocation)
}

func newTestEngine(now time.Time) *Engine {
	return NewEngine(domain.DefaultBusinessHours(), shopLocation, 30).
		WithTimeProvider(fixedTime{now: now})
}

func scheduled(barberID uuid.UUID, startAt time.Time, minutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		BarberID:        barberID,
		StartAt:         startAt,
		DurationMinutes: minutes,
		Status:          domain.StatusScheduled,
	}
}

func TestIsWithinBusinessHours(t *testing.T) {
	e := newTestEngine(at(2025, 3, 1, 0, 0))

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"weekday opening", at(2025, 3, 10, 8, 0), true},
		{"weekday before opening", at(2025, 3, 10, 7, 59), false},
		{"weekday last morning minute", at(2025, 3, 10, 11, 59), true},
		{"weekday lunch start", at(2025, 3, 10, 12, 0), false},
		{"weekday lunch", at(2025, 3, 10, 12, 30), false},
		{"weekday afternoon", at(2025, 3, 10, 13, 0), true},
		{"weekday closing", at(2025, 3, 10, 17, 0), false},
		{"saturday noon", at(2025, 3, 15, 12, 30), true},
		{"saturday evening", at(2025, 3, 15, 19, 59), true},
		{"saturday closing", at(2025, 3, 15, 20, 0), false},
		{"sunday morning", at(2025, 3, 9, 10, 0), false},
		{"seconds are truncated", at(2025, 3, 10, 11, 59).Add(59 * time.Second), true},
		// 15:00 UTC == 10:00 в часовом поясе заведения
		{"converted to shop location", time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), true},
		{"converted lunch", time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsWithinBusinessHours(tt.t))
		})
	}
}

func TestIsWithinBusinessHours_SundayAlwaysClosed(t *testing.T) {
	e := newTestEngine(at(2025, 3, 1, 0, 0))
	sunday := at(2025, 3, 9, 0, 0)

	for minute := 0; minute < 24*60; minute++ {
		require.False(t, e.IsWithinBusinessHours(sunday.Add(time.Duration(minute)*time.Minute)))
	}
}

func TestGenerateTimeSlots(t *testing.T) {
	e := newTestEngine(at(2025, 3, 1, 0, 0))

	t.Run("sunday has no slots", func(t *testing.T) {
		slots, err := e.GenerateTimeSlots(at(2025, 3, 9, 0, 0), 30)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("weekday 30 minutes", func(t *testing.T) {
		slots, err := e.GenerateTimeSlots(at(2025, 3, 10, 0, 0), 30)
		require.NoError(t, err)
		require.Len(t, slots, 16)

		assert.Equal(t, types.TimeString("08:00"), slots[0].Start)
		assert.Equal(t, types.TimeString("08:30"), slots[0].End)
		assert.Equal(t, "08:00", slots[0].Label)
		assert.Equal(t, types.TimeString("11:30"), slots[7].Start)
		assert.Equal(t, types.TimeString("12:00"), slots[7].End)
		assert.Equal(t, types.TimeString("13:00"), slots[8].Start)
		assert.Equal(t, types.TimeString("16:30"), slots[15].Start)
		assert.Equal(t, types.TimeString("17:00"), slots[15].End)
	})

	t.Run("saturday 30 minutes", func(t *testing.T) {
		slots, err := e.GenerateTimeSlots(at(2025, 3, 15, 0, 0), 30)
		require.NoError(t, err)
		require.Len(t, slots, 24)
		assert.Equal(t, types.TimeString("19:30"), slots[23].Start)
	})

	t.Run("last slot may overrun interval end", func(t *testing.T) {
		slots, err := e.GenerateTimeSlots(at(2025, 3, 10, 0, 0), 25)
		require.NoError(t, err)
		require.Len(t, slots, 20)

		assert.Equal(t, types.TimeString("11:45"), slots[9].Start)
		assert.Equal(t, types.TimeString("12:10"), slots[9].End)
		assert.Equal(t, types.TimeString("13:00"), slots[10].Start)
		assert.Equal(t, types.TimeString("17:10"), slots[19].End)
	})

	t.Run("slot invariants", func(t *testing.T) {
		for _, duration := range []int{5, 15, 20, 30, 45, 60, 90} {
			slots, err := e.GenerateTimeSlots(at(2025, 3, 11, 0, 0), duration)
			require.NoError(t, err)
			for _, slot := range slots {
				assert.Equal(t, duration, slot.DurationMinutes())
				assert.True(t, e.IsWithinBusinessHours(slot.Start.On(at(2025, 3, 11, 0, 0), shopLocation)),
					"slot %s must start inside business hours", slot.Label)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := e.GenerateTimeSlots(at(2025, 3, 12, 0, 0), 30)
		require.NoError(t, err)
		second, err := e.GenerateTimeSlots(at(2025, 3, 12, 0, 0), 30)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("non-positive duration", func(t *testing.T) {
		_, err := e.GenerateTimeSlots(at(2025, 3, 10, 0, 0), 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)

		_, err = e.GenerateTimeSlots(at(2025, 3, 10, 0, 0), -15)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("slot crossing midnight is not generated", func(t *testing.T) {
		schedule, err := domain.NewWeeklySchedule(map[time.Weekday][]domain.OpenInterval{
			time.Monday: {{Start: "23:00", End: "24:00"}},
		})
		require.NoError(t, err)

		slots, err := e.WithSchedule(schedule).GenerateTimeSlots(at(2025, 3, 10, 0, 0), 45)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, types.TimeString("23:45"), slots[0].End)
	})
}

func TestValidateAppointment(t *testing.T) {
	now := at(2025, 3, 1, 9, 0)
	e := newTestEngine(now)
	barberID := uuid.New()

	tests := []struct {
		name    string
		barber  uuid.UUID
		startAt time.Time
		service string
		want    []string
	}{
		{
			name:    "valid weekday",
			barber:  barberID,
			startAt: at(2025, 3, 10, 10, 0),
			service: "Corte",
			want:    []string{},
		},
		{
			name:    "all required fields missing",
			barber:  uuid.Nil,
			startAt: time.Time{},
			service: "",
			want:    []string{MsgBarberRequired, MsgDateTimeRequired, MsgServiceRequired},
		},
		{
			name:    "blank service",
			barber:  barberID,
			startAt: at(2025, 3, 10, 10, 0),
			service: "   ",
			want:    []string{MsgServiceRequired},
		},
		{
			name:    "sunday reports closed day and outside hours",
			barber:  barberID,
			startAt: at(2025, 3, 9, 10, 0),
			service: "Corte",
			want:    []string{MsgClosedOnSundays, MsgOutsideBusinessHours},
		},
		{
			name:    "lunch break",
			barber:  barberID,
			startAt: at(2025, 3, 10, 12, 30),
			service: "Corte",
			want:    []string{MsgOutsideBusinessHours},
		},
		{
			name:    "past and outside hours",
			barber:  barberID,
			startAt: at(2025, 2, 28, 18, 0),
			service: "Barba",
			want:    []string{MsgOutsideBusinessHours, MsgPastDate},
		},
		{
			name:    "past sunday gets every time rule",
			barber:  uuid.Nil,
			startAt: at(2025, 2, 23, 10, 0),
			service: "",
			want: []string{
				MsgBarberRequired,
				MsgServiceRequired,
				MsgClosedOnSundays,
				MsgOutsideBusinessHours,
				MsgPastDate,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.ValidateAppointment(tt.barber, tt.startAt, tt.service)
			assert.Equal(t, tt.want, result.Errors)
			assert.Equal(t, len(tt.want) == 0, result.Valid)
		})
	}
}

func TestValidateAppointment_NowBoundary(t *testing.T) {
	now := at(2025, 3, 10, 10, 0)
	e := newTestEngine(now)
	barberID := uuid.New()

	atNow := e.ValidateAppointment(barberID, now, "Corte")
	assert.False(t, atNow.Valid)
	assert.Equal(t, []string{MsgPastDate}, atNow.Errors)

	minuteLater := e.ValidateAppointment(barberID, now.Add(time.Minute), "Corte")
	assert.True(t, minuteLater.Valid)
	assert.Empty(t, minuteLater.Errors)
}

func TestValidateAppointment_ClosedWeekdayOfCustomSchedule(t *testing.T) {
	schedule, err := domain.NewWeeklySchedule(map[time.Weekday][]domain.OpenInterval{
		time.Tuesday: {{Start: "09:00", End: "18:00"}},
	})
	require.NoError(t, err)
	e := newTestEngine(at(2025, 3, 1, 0, 0)).WithSchedule(schedule)

	result := e.ValidateAppointment(uuid.New(), at(2025, 3, 10, 10, 0), "Corte")
	assert.Equal(t, []string{MsgClosedDay, MsgOutsideBusinessHours}, result.Errors)
}

func TestDayName(t *testing.T) {
	e := newTestEngine(at(2025, 3, 1, 0, 0))

	assert.Equal(t, "Domingo", e.DayName(at(2025, 3, 9, 10, 0)))
	assert.Equal(t, "Lunes", e.DayName(at(2025, 3, 10, 10, 0)))
	assert.Equal(t, "Miércoles", e.DayName(at(2025, 3, 12, 10, 0)))
	assert.Equal(t, "Sábado", e.DayName(at(2025, 3, 15, 10, 0)))
	// 2025-03-10 02:00 UTC еще воскресенье в часовом поясе заведения
	assert.Equal(t, "Domingo", e.DayName(time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)))
}

func TestCombineDateTime(t *testing.T) {
	e := newTestEngine(at(2025, 3, 1, 0, 0))

	got, err := e.CombineDateTime(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "14:30")
	require.NoError(t, err)
	assert.True(t, got.Equal(at(2025, 3, 10, 14, 30)))

	_, err = e.CombineDateTime(at(2025, 3, 10, 0, 0), "2pm")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

// В Каире 2025-04-25 (пятница) часы переводятся с 00:00 на 01:00
func TestWallClockOnDaylightSavingDay(t *testing.T) {
	cairo, err := time.LoadLocation("Africa/Cairo")
	require.NoError(t, err)

	e := NewEngine(domain.DefaultBusinessHours(), cairo, 30).
		WithTimeProvider(fixedTime{now: time.Date(2025, 4, 1, 0, 0, 0, 0, cairo)})
	day := time.Date(2025, 4, 25, 12, 0, 0, 0, cairo)

	t.Run("combine date and time", func(t *testing.T) {
		got, err := e.CombineDateTime(day, "08:00")
		require.NoError(t, err)
		assert.Equal(t, 8, got.Hour())
		assert.Equal(t, 0, got.Minute())
		assert.True(t, e.IsWithinBusinessHours(got))
	})

	t.Run("slot start matches label", func(t *testing.T) {
		days, err := e.DayAvailability(day, 30, []uuid.UUID{uuid.New()}, nil)
		require.NoError(t, err)
		require.Len(t, days, 1)
		require.NotEmpty(t, days[0].Slots)

		for _, slot := range days[0].Slots {
			assert.Equal(t, slot.Slot.Start.String(), slot.StartAt.Format("15:04"))
			assert.True(t, e.IsWithinBusinessHours(slot.StartAt), "slot %s", slot.Slot.Label)
		}
	})

	t.Run("next opening", func(t *testing.T) {
		got, ok, err := e.NextOpening(time.Date(2025, 4, 24, 18, 0, 0, 0, cairo), 30)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 25, got.Day())
		assert.Equal(t, 8, got.Hour())
	})
}
