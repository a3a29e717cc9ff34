package get_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "identificador de cita inválido"
	msgNotFound             = "cita no encontrada"
	msgMissingUserID        = "falta el identificador de usuario"
	msgForbidden            = "acceso denegado"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	// Получаем запись (сервис сам проверит права доступа)
	appointment, err := h.service.GetByID(r.Context(), appointmentID, actor)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved successfully: appointment_id=%s, user_id=%s",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
