package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgInvalidParams       = "parámetros inválidos: fecha YYYY-MM-DD, hora HH:MM"
	msgMissingUserID       = "falta el identificador de usuario"
	msgValidationFailed    = "la cita no cumple las reglas de agenda"
	msgInvalidInput        = "datos de la cita inválidos"
	msgBarberNotFound      = "barbero no encontrado"
	msgSlotTaken           = "el barbero ya tiene una cita en ese horario"
	msgAvailabilityUnknown = "no se pudo verificar la disponibilidad, intenta de nuevo"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID, h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createAppointment.ValidationError

		// Обработка ошибок use case
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: user_id=%s, errors=%v", userID, validationErr.Errors)
			handlers.RespondValidationErrors(w, msgValidationFailed, validationErr.Errors)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: user_id=%s, barber_id=%s", userID, req.BarberID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrAvailabilityUnknown):
			h.logger.Error("POST /appointments - Availability unknown: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnknown)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%s, barber_id=%s, error=%v",
				userID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := models.FromDomainAppointment(result.Appointment, h.location)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, user_id=%s, barber_id=%s",
		result.Appointment.ID, userID, result.Appointment.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
