package update_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	updateAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "identificador de cita inválido"
	msgInvalidRequestBody   = "cuerpo de la solicitud inválido"
	msgInvalidParams        = "parámetros inválidos: fecha YYYY-MM-DD y hora HH:MM juntas"
	msgMissingUserID        = "falta el identificador de usuario"
	msgNotFound             = "cita no encontrada"
	msgForbidden            = "acceso denegado"
	msgNotEditable          = "la cita ya no se puede modificar"
	msgValidationFailed     = "la cita no cumple las reglas de agenda"
	msgInvalidInput         = "datos de la cita inválidos"
	msgBarberNotFound       = "barbero no encontrado"
	msgSlotTaken            = "el barbero ya tiene una cita en ese horario"
	msgAvailabilityUnknown  = "no se pudo verificar la disponibilidad, intenta de nuevo"
)

type Handler struct {
	useCase  UpdateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathUUID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID, middleware.IsAdmin(r.Context()), h.location)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *updateAppointment.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /appointments/{id} - Validation failed: appointment_id=%s, errors=%v",
				appointmentID, validationErr.Errors)
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErr.Errors)

		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrAccessDenied):
			h.logger.Warn("PUT /appointments/{id} - Access denied: appointment_id=%s, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateAppointment.ErrNotEditable):
			h.logger.Warn("PUT /appointments/{id} - Not editable: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Invalid input: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateAppointment.ErrBarberNotFound):
			h.logger.Warn("PUT /appointments/{id} - Barber not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, updateAppointment.ErrSlotTaken):
			h.logger.Warn("PUT /appointments/{id} - Slot taken: appointment_id=%s", appointmentID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, updateAppointment.ErrAvailabilityUnknown):
			h.logger.Error("PUT /appointments/{id} - Availability unknown: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnknown)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := models.FromDomainAppointment(result.Appointment, h.location)

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%s, user_id=%s",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
