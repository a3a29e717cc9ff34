package update_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	updateAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

var bogota = time.FixedZone("COT", -5*60*60)

type fakeUseCase struct {
	got *updateAppointment.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *updateAppointment.Request) (*updateAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}

	appt := &domain.Appointment{
		ID:         req.ID,
		CustomerID: req.UserID,
		Service:    "Corte",
		StartAt:    time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		Status:     domain.StatusScheduled,
	}
	if req.StartAt != nil {
		appt.StartAt = *req.StartAt
	}
	return &updateAppointment.Response{Appointment: appt}, nil
}

func do(h *Handler, id string, isAdmin bool, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/appointments/"+id, bytes.NewBufferString(body))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	req = req.WithContext(middleware.WithUser(req.Context(), uuid.New(), isAdmin))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Reschedule(t *testing.T) {
	id := uuid.New()
	uc := &fakeUseCase{}
	h := NewHandler(uc, bogota, logger.NewNop())

	rec := do(h, id.String(), true, `{"date":"2025-03-11","time":"14:30","durationMinutes":45}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, uc.got.ID)
	assert.True(t, uc.got.IsAdmin)
	require.NotNil(t, uc.got.StartAt)
	assert.True(t, uc.got.StartAt.Equal(time.Date(2025, 3, 11, 14, 30, 0, 0, bogota)))
	assert.Equal(t, 45, *uc.got.DurationMinutes)
	assert.Nil(t, uc.got.BarberID)

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-11", body.Date)
	assert.Equal(t, "14:30", body.Time)
}

func TestHandle_NotesOnly(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, bogota, logger.NewNop())

	rec := do(h, uuid.NewString(), false, `{"notes":"llego 5 min tarde"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.StartAt)
	assert.Equal(t, "llego 5 min tarde", *uc.got.Notes)
}

func TestHandle_ValidationErrors(t *testing.T) {
	uc := &fakeUseCase{err: &updateAppointment.ValidationError{Errors: []string{availability.MsgPastDate}}}
	h := NewHandler(uc, bogota, logger.NewNop())

	rec := do(h, uuid.NewString(), false, `{"date":"2020-01-01","time":"10:00"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{availability.MsgPastDate}, body.Errors)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		body     string
		err      error
		wantCode int
	}{
		{name: "bad id", id: "x", body: `{}`, wantCode: http.StatusBadRequest},
		{name: "date without time", id: uuid.NewString(), body: `{"date":"2025-03-11"}`, wantCode: http.StatusBadRequest},
		{name: "bad barber", id: uuid.NewString(), body: `{"barberId":"7"}`, wantCode: http.StatusBadRequest},
		{name: "not found", id: uuid.NewString(), body: `{}`, err: updateAppointment.ErrAppointmentNotFound, wantCode: http.StatusNotFound},
		{name: "forbidden", id: uuid.NewString(), body: `{}`, err: updateAppointment.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "not editable", id: uuid.NewString(), body: `{}`, err: updateAppointment.ErrNotEditable, wantCode: http.StatusConflict},
		{name: "slot taken", id: uuid.NewString(), body: `{}`, err: updateAppointment.ErrSlotTaken, wantCode: http.StatusConflict},
		{name: "barber not found", id: uuid.NewString(), body: `{}`, err: updateAppointment.ErrBarberNotFound, wantCode: http.StatusNotFound},
		{name: "storage down", id: uuid.NewString(), body: `{}`, err: updateAppointment.ErrAvailabilityUnknown, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, bogota, logger.NewNop())
			assert.Equal(t, tt.wantCode, do(h, tt.id, false, tt.body).Code)
		})
	}
}
