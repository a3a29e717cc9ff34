package update_appointment_status

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
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgMissingUserID        = "falta el identificador de usuario"
	msgNotFound             = "cita no encontrada"
	msgForbidden            = "acceso denegado"
	msgInvalidStatus        = "estado inválido"
	msgInvalidTransition    = "la cita no puede cambiar a ese estado"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	// Декодируем body
	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Меняем статус (сервис сам проверит права и допустимость перехода)
	err = h.service.UpdateStatus(r.Context(), appointmentID, req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/status - Access denied: appointment_id=%s, user_id=%s",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: %s", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Возвращаем запись в новом состоянии
	appointment, err := h.service.GetByID(r.Context(), appointmentID, actor)
	if err != nil {
		h.logger.Error("PATCH /appointments/{id}/status - Failed to reload appointment: appointment_id=%s, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated successfully: appointment_id=%s, status=%s, user_id=%s",
		appointmentID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, appointment)
}
