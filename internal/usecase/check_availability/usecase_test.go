package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type fakeAppointments struct {
	items []*domain.Appointment
	err   error
	calls int
}

func (f *fakeAppointments) ListBlockingForDay(ctx context.Context, dayStart, dayEnd time.Time, barberID *uuid.UUID) ([]*domain.Appointment, error) {
	f.calls++
	return f.items, f.err
}

type fakeBarbers struct {
	barbers map[uuid.UUID]*domain.Barber
	err     error
}

func (f *fakeBarbers) GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error) {
	if f.err != nil {
		return nil, f.err
	}
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, barberRepo.ErrBarberNotFound
}

type fakeEngines struct {
	base *availability.Engine
}

func (f *fakeEngines) Base() *availability.Engine { return f.base }

func (f *fakeEngines) ForBarber(ctx context.Context, barberID uuid.UUID) (*availability.Engine, error) {
	return f.base, nil
}

type fakeMetrics struct {
	outcomes []string
}

func (f *fakeMetrics) IncAvailabilityCheck(outcome string) {
	f.outcomes = append(f.outcomes, outcome)
}

var loc = time.FixedZone("COT", -5*60*60)

func monday(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, loc)
}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	barbers      *fakeBarbers
	metrics      *fakeMetrics
	barberID     uuid.UUID
	existing     *domain.Appointment
}

func newFixture() *fixture {
	barberID := uuid.New()
	existing := &domain.Appointment{
		ID:              uuid.New(),
		BarberID:        barberID,
		StartAt:         monday(10, 0),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
	}

	engine := availability.NewEngine(domain.DefaultBusinessHours(), loc, 30).
		WithTimeProvider(fixedTime(time.Date(2025, 3, 1, 9, 0, 0, 0, loc)))

	f := &fixture{
		appointments: &fakeAppointments{items: []*domain.Appointment{existing}},
		barbers: &fakeBarbers{barbers: map[uuid.UUID]*domain.Barber{
			barberID: {ID: barberID, Name: "Carlos", Active: true},
		}},
		metrics:  &fakeMetrics{},
		barberID: barberID,
		existing: existing,
	}
	f.uc = NewUseCase(f.appointments, f.barbers, &fakeEngines{base: engine}, f.metrics, logger.NewNop())
	return f
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		startAt   time.Time
		duration  int
		exclude   bool
		available bool
		conflict  bool
		outcome   string
	}{
		{"free before existing", monday(9, 30), 30, false, true, false, OutcomeAvailable},
		{"same start", monday(10, 0), 0, false, false, true, OutcomeConflict},
		{"partial overlap", monday(10, 15), 30, false, false, true, OutcomeConflict},
		{"own appointment excluded", monday(10, 15), 30, true, true, false, OutcomeAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := &Request{
				BarberID:        f.barberID,
				Service:         "Corte",
				StartAt:         tt.startAt,
				DurationMinutes: tt.duration,
			}
			if tt.exclude {
				req.ExcludeID = &f.existing.ID
			}

			resp, err := f.uc.Execute(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, resp.Decision.Validation.Valid)
			assert.Equal(t, tt.available, resp.Decision.Available)
			assert.Equal(t, tt.conflict, resp.Decision.Conflict)
			assert.Equal(t, "Lunes", resp.DayName)
			assert.Equal(t, []string{tt.outcome}, f.metrics.outcomes)
		})
	}
}

func TestUseCase_Execute_InvalidSkipsStorage(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		BarberID: f.barberID,
		Service:  "Corte",
		StartAt:  time.Date(2025, 3, 9, 10, 0, 0, 0, loc),
	})
	require.NoError(t, err)
	assert.False(t, resp.Decision.Validation.Valid)
	assert.Equal(t, []string{availability.MsgClosedOnSundays, availability.MsgOutsideBusinessHours},
		resp.Decision.Validation.Errors)
	assert.False(t, resp.Decision.Available)
	assert.Zero(t, f.appointments.calls)
	assert.Equal(t, []string{OutcomeInvalid}, f.metrics.outcomes)
}

func TestUseCase_Execute_EmptyRequest(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		availability.MsgBarberRequired,
		availability.MsgDateTimeRequired,
		availability.MsgServiceRequired,
	}, resp.Decision.Validation.Errors)
	assert.Empty(t, resp.DayName)
}

func TestUseCase_Execute_FailsClosed(t *testing.T) {
	f := newFixture()
	f.appointments.err = errors.New("connection refused")

	resp, err := f.uc.Execute(context.Background(), &Request{
		BarberID: f.barberID,
		Service:  "Corte",
		StartAt:  monday(9, 0),
	})
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Nil(t, resp)
	assert.Equal(t, []string{OutcomeUnknown}, f.metrics.outcomes)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	f := newFixture()
	inactiveID := uuid.New()
	f.barbers.barbers[inactiveID] = &domain.Barber{ID: inactiveID, Active: false}
	nilID := uuid.Nil

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"unknown barber", &Request{BarberID: uuid.New(), Service: "Corte", StartAt: monday(9, 0)}, ErrBarberNotFound},
		{"inactive barber", &Request{BarberID: inactiveID, Service: "Corte", StartAt: monday(9, 0)}, ErrBarberNotFound},
		{"negative duration", &Request{BarberID: f.barberID, DurationMinutes: -5}, ErrInvalidInput},
		{"nil exclude", &Request{BarberID: f.barberID, ExcludeID: &nilID}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
