package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

const (
	msgMissingUserID = "falta el identificador de usuario"
	msgInvalidParams = "parámetros de consulta inválidos"
)

type Handler struct {
	service  AppointmentService
	location *time.Location
	logger   Logger
}

func NewHandler(service AppointmentService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: barberId, customerId, from, to, status, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(actor, r.URL.Query(), h.location)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Админ видит все записи, клиент - только свои
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: user_id=%s, admin=%t, count=%d",
		userID, actor.IsAdmin, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
