package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	productRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/product"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

type fixedTime time.Time

func (f fixedTime) Now() time.Time { return time.Time(f) }

type fakeAppointments struct {
	items     []*domain.Appointment
	listErr   error
	createErr error
	created   []*domain.Appointment
}

func (f *fakeAppointments) ListBlockingForDay(ctx context.Context, dayStart, dayEnd time.Time, barberID *uuid.UUID) ([]*domain.Appointment, error) {
	return f.items, f.listErr
}

func (f *fakeAppointments) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appt.ID = uuid.New()
	f.created = append(f.created, appt)
	return appt, nil
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

type fakeCatalog struct {
	names map[string]bool
	err   error
	asked []string
}

func (f *fakeCatalog) GetServiceByName(ctx context.Context, name string) (*domain.Product, error) {
	f.asked = append(f.asked, name)
	if f.err != nil {
		return nil, f.err
	}
	if !f.names[name] {
		return nil, productRepo.ErrServiceNotFound
	}
	return &domain.Product{ID: uuid.New(), Name: name}, nil
}

type fakeEngines struct {
	base *availability.Engine
}

func (f *fakeEngines) Base() *availability.Engine { return f.base }

func (f *fakeEngines) ForBarber(ctx context.Context, barberID uuid.UUID) (*availability.Engine, error) {
	return f.base, nil
}

type fakeTx struct {
	calls int
}

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	mu      sync.Mutex
	err     error
	sent    []*domain.Appointment
	release chan struct{} // если задан, отправка ждет его закрытия
}

func (f *fakeNotifier) NotifyAppointment(ctx context.Context, appt *domain.Appointment) error {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, appt)
	return f.err
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeMetrics struct {
	events []string
}

func (f *fakeMetrics) IncAppointmentEvent(event string) {
	f.events = append(f.events, event)
}

var loc = time.FixedZone("COT", -5*60*60)

func monday(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, loc)
}

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	barbers      *fakeBarbers
	catalog      *fakeCatalog
	notifier     *fakeNotifier
	tx           *fakeTx
	metrics      *fakeMetrics
	barberID     uuid.UUID
	customerID   uuid.UUID
}

func newFixture() *fixture {
	barberID := uuid.New()
	engine := availability.NewEngine(domain.DefaultBusinessHours(), loc, 30).
		WithTimeProvider(fixedTime(time.Date(2025, 3, 1, 9, 0, 0, 0, loc)))

	f := &fixture{
		appointments: &fakeAppointments{},
		barbers: &fakeBarbers{barbers: map[uuid.UUID]*domain.Barber{
			barberID: {ID: barberID, Name: "Carlos", Active: true},
		}},
		catalog:    &fakeCatalog{names: map[string]bool{"Corte y barba": true}},
		notifier:   &fakeNotifier{},
		tx:         &fakeTx{},
		metrics:    &fakeMetrics{},
		barberID:   barberID,
		customerID: uuid.New(),
	}
	f.uc = NewUseCase(f.appointments, f.barbers, f.catalog, &fakeEngines{base: engine}, f.notifier, f.tx, f.metrics, logger.NewNop())
	return f
}

func (f *fixture) request(startAt time.Time) *Request {
	return &Request{
		CustomerID: f.customerID,
		BarberID:   f.barberID,
		Service:    " Corte y barba ",
		StartAt:    startAt,
		Notes:      ptr.Ptr("Primera vez"),
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.request(monday(9, 30).UTC()))
	require.NoError(t, err)

	appt := resp.Appointment
	assert.NotEqual(t, uuid.Nil, appt.ID)
	assert.Equal(t, f.customerID, appt.CustomerID)
	assert.Equal(t, "Corte y barba", appt.Service)
	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.Equal(t, 30, appt.DurationMinutes)
	assert.Equal(t, loc, appt.StartAt.Location())
	assert.True(t, appt.StartAt.Equal(monday(9, 30)))
	assert.Equal(t, ptr.Ptr("Carlos"), appt.BarberName)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, []string{EventCreated}, f.metrics.events)

	require.Eventually(t, func() bool { return f.notifier.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestUseCase_Execute_NotifierFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("smtp: connection refused")

	resp, err := f.uc.Execute(context.Background(), f.request(monday(9, 30)))
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointment)
	require.Eventually(t, func() bool { return f.notifier.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Len(t, f.appointments.created, 1)
}

func TestUseCase_Wait_DrainsPendingNotifications(t *testing.T) {
	f := newFixture()
	f.notifier.release = make(chan struct{})

	_, err := f.uc.Execute(context.Background(), f.request(monday(9, 30)))
	require.NoError(t, err)

	// Отправка еще висит, ожидание прерывается по таймауту
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.uc.Wait(ctx), context.DeadlineExceeded)
	assert.Zero(t, f.notifier.count())

	close(f.notifier.release)
	require.NoError(t, f.uc.Wait(context.Background()))
	assert.Equal(t, 1, f.notifier.count())
}

func TestUseCase_Wait_NothingPending(t *testing.T) {
	f := newFixture()
	f.uc.notifier = nil

	assert.NoError(t, f.uc.Wait(context.Background()))
}

func TestUseCase_Execute_WithoutNotifier(t *testing.T) {
	f := newFixture()
	f.uc.notifier = nil

	_, err := f.uc.Execute(context.Background(), f.request(monday(9, 30)))
	require.NoError(t, err)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	f := newFixture()
	f.appointments.items = []*domain.Appointment{{
		ID:              uuid.New(),
		BarberID:        f.barberID,
		StartAt:         monday(10, 0),
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
	}}

	_, err := f.uc.Execute(context.Background(), f.request(monday(10, 15)))
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.appointments.created)
	assert.Equal(t, []string{EventConflict}, f.metrics.events)
	assert.Zero(t, f.notifier.count())

	// Граничащая запись не конфликтует
	_, err = f.uc.Execute(context.Background(), f.request(monday(10, 30)))
	assert.NoError(t, err)
}

func TestUseCase_Execute_ConcurrentInsert(t *testing.T) {
	f := newFixture()
	f.appointments.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), f.request(monday(11, 0)))
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUseCase_Execute_ValidationErrors(t *testing.T) {
	f := newFixture()

	req := f.request(time.Date(2025, 3, 9, 10, 0, 0, 0, loc))
	req.Service = ""

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidationFailed)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{
		availability.MsgServiceRequired,
		availability.MsgClosedOnSundays,
		availability.MsgOutsideBusinessHours,
	}, validationErr.Errors)
	assert.Zero(t, f.tx.calls)
	assert.Equal(t, []string{EventRejected}, f.metrics.events)
}

func TestUseCase_Execute_FailsClosed(t *testing.T) {
	f := newFixture()
	f.appointments.listErr = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), f.request(monday(9, 0)))
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
	assert.Empty(t, f.appointments.created)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	f := newFixture()
	inactiveID := uuid.New()
	f.barbers.barbers[inactiveID] = &domain.Barber{ID: inactiveID, Active: false}

	tests := []struct {
		name   string
		modify func(r *Request)
		want   error
	}{
		{"no customer", func(r *Request) { r.CustomerID = uuid.Nil }, ErrInvalidInput},
		{"duration too short", func(r *Request) { r.DurationMinutes = 1 }, ErrInvalidInput},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(string(make([]rune, domain.MaxNotesLength+1))) }, ErrInvalidInput},
		{"unknown barber", func(r *Request) { r.BarberID = uuid.New() }, ErrBarberNotFound},
		{"inactive barber", func(r *Request) { r.BarberID = inactiveID }, ErrBarberNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request(monday(9, 0))
			tt.modify(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUseCase_Execute_BarberStorageFailure(t *testing.T) {
	f := newFixture()
	f.barbers.err = errors.New("timeout")

	_, err := f.uc.Execute(context.Background(), f.request(monday(9, 0)))
	assert.ErrorIs(t, err, ErrAvailabilityUnknown)
}

func TestUseCase_Execute_UnknownService(t *testing.T) {
	f := newFixture()
	req := f.request(monday(9, 0))
	req.Service = "Tinte completo"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrValidationFailed)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{availability.MsgUnknownService}, validationErr.Errors)
	assert.Equal(t, []string{"Tinte completo"}, f.catalog.asked)
	assert.Zero(t, f.tx.calls)
	assert.Equal(t, []string{EventRejected}, f.metrics.events)
}

func TestUseCase_Execute_CatalogStorageFailure(t *testing.T) {
	f := newFixture()
	f.catalog.err = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), f.request(monday(9, 0)))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.tx.calls)
}
