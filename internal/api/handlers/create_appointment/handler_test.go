package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

var bogota = time.FixedZone("COT", -5*60*60)

type fakeUseCase struct {
	got *createAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{Appointment: &domain.Appointment{
		ID:              uuid.New(),
		CustomerID:      req.CustomerID,
		BarberID:        req.BarberID,
		Service:         req.Service,
		StartAt:         req.StartAt.UTC(),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
		Notes:           req.Notes,
	}}, nil
}

func do(h *Handler, userID *uuid.UUID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	if userID != nil {
		req = req.WithContext(middleware.WithUser(req.Context(), *userID, false))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	userID := uuid.New()
	barberID := uuid.New()
	uc := &fakeUseCase{}
	h := NewHandler(uc, bogota, logger.NewNop())

	rec := do(h, &userID, fmt.Sprintf(`{"barberId":%q,"service":"Corte","date":"2025-03-10","time":"10:00","notes":"sin máquina"}`, barberID))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, userID, uc.got.CustomerID)
	assert.True(t, uc.got.StartAt.Equal(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)))

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-10", body.Date)
	assert.Equal(t, "10:00", body.Time)
	assert.Equal(t, "scheduled", body.Status)
	assert.Equal(t, "sin máquina", *body.Notes)
}

func TestHandle_ValidationErrors(t *testing.T) {
	userID := uuid.New()
	uc := &fakeUseCase{err: &createAppointment.ValidationError{
		Errors: []string{availability.MsgClosedOnSundays, availability.MsgOutsideBusinessHours},
	}}
	h := NewHandler(uc, bogota, logger.NewNop())

	rec := do(h, &userID, fmt.Sprintf(`{"barberId":%q,"service":"Corte","date":"2025-03-09","time":"10:00"}`, uuid.New()))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{availability.MsgClosedOnSundays, availability.MsgOutsideBusinessHours}, body.Errors)
}

func TestHandle_Errors(t *testing.T) {
	userID := uuid.New()
	valid := fmt.Sprintf(`{"barberId":%q,"service":"Corte","date":"2025-03-10","time":"10:00"}`, uuid.New())

	tests := []struct {
		name     string
		userID   *uuid.UUID
		body     string
		err      error
		wantCode int
	}{
		{name: "no user", body: valid, wantCode: http.StatusUnauthorized},
		{name: "bad json", userID: &userID, body: "{", wantCode: http.StatusBadRequest},
		{name: "bad date", userID: &userID, body: `{"date":"2025-13-01","time":"10:00"}`, wantCode: http.StatusBadRequest},
		{name: "midnight end is not a start", userID: &userID, body: `{"date":"2025-03-10","time":"24:00"}`, wantCode: http.StatusBadRequest},
		{name: "invalid duration", userID: &userID, body: valid, err: createAppointment.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "barber not found", userID: &userID, body: valid, err: createAppointment.ErrBarberNotFound, wantCode: http.StatusNotFound},
		{name: "slot taken", userID: &userID, body: valid, err: createAppointment.ErrSlotTaken, wantCode: http.StatusConflict},
		{name: "storage down", userID: &userID, body: valid, err: fmt.Errorf("%w: db", createAppointment.ErrAvailabilityUnknown), wantCode: http.StatusServiceUnavailable},
		{name: "internal", userID: &userID, body: valid, err: createAppointment.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, bogota, logger.NewNop())
			assert.Equal(t, tt.wantCode, do(h, tt.userID, tt.body).Code)
		})
	}
}
