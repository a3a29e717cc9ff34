package check_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-BarberBooking/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody  = "cuerpo de la solicitud inválido"
	msgInvalidParams       = "parámetros inválidos: fecha YYYY-MM-DD, hora HH:MM"
	msgInvalidDuration     = "duración inválida"
	msgBarberNotFound      = "barbero no encontrado"
	msgAvailabilityUnknown = "no se pudo verificar la disponibilidad, intenta de nuevo"
)

type Handler struct {
	useCase  CheckAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /availability/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, checkAvailability.ErrBarberNotFound):
			h.logger.Warn("POST /availability/check - Barber not found: barber_id=%s", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, checkAvailability.ErrAvailabilityUnknown):
			h.logger.Error("POST /availability/check - Availability unknown: barber_id=%s, error=%v", req.BarberID, err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnknown)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: barber_id=%s, error=%v",
				req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /availability/check - Checked: barber_id=%s, available=%t, conflict=%t, errors=%d",
		req.BarberID, response.Available, response.Conflict, len(response.Errors))
	handlers.RespondJSON(w, http.StatusOK, response)
}
