package list_barbers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

type fakeService struct {
	barbers         []*models.BarberResponse
	err             error
	includeInactive bool
	actor           models.Actor
}

func (f *fakeService) List(ctx context.Context, includeInactive bool, actor models.Actor) ([]*models.BarberResponse, error) {
	f.includeInactive = includeInactive
	f.actor = actor
	if f.err != nil {
		return nil, f.err
	}
	return f.barbers, nil
}

func TestHandle(t *testing.T) {
	carlos := &models.BarberResponse{ID: uuid.New(), Name: "Carlos", Specialty: ptr.Ptr("Fade"), Active: true}
	svc := &fakeService{barbers: []*models.BarberResponse{carlos}}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/barbers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []models.BarberResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []models.BarberResponse{*carlos}, body)
	assert.False(t, svc.includeInactive)
	assert.Equal(t, models.Actor{}, svc.actor)
}

func TestHandle_Empty(t *testing.T) {
	h := NewHandler(&fakeService{barbers: []*models.BarberResponse{}}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/barbers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_IncludeInactiveAsAdmin(t *testing.T) {
	adminID := uuid.New()
	svc := &fakeService{barbers: []*models.BarberResponse{}}
	h := NewHandler(svc, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/barbers?includeInactive=true", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), adminID, true))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.includeInactive)
	assert.Equal(t, models.Actor{UserID: adminID, IsAdmin: true}, svc.actor)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		err      error
		wantCode int
	}{
		{name: "bad flag", query: "?includeInactive=maybe", wantCode: http.StatusBadRequest},
		{name: "forbidden", query: "?includeInactive=true", err: barbers.ErrAccessDenied, wantCode: http.StatusForbidden},
		{name: "internal", err: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/barbers"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
