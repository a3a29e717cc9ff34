package delete_appointment

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
	msgMissingUserID        = "falta el identificador de usuario"
	msgNotFound             = "cita no encontrada"
	msgForbidden            = "solo un administrador puede eliminar citas"
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

// Handle DELETE /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	if err := h.service.Delete(r.Context(), appointmentID, actor); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to delete appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: appointment_id=%s, user_id=%s", appointmentID, userID)
	handlers.RespondNoContent(w)
}
