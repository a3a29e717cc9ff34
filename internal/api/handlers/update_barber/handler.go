package update_barber

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

const (
	msgInvalidBarberID    = "identificador de barbero inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el identificador de usuario"
	msgNotFound           = "barbero no encontrado"
	msgForbidden          = "acceso denegado"
	msgInvalidBarber      = "datos del barbero inválidos"
)

type Handler struct {
	service BarberService
	logger  Logger
}

func NewHandler(service BarberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/barbers/{barberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathUUID(r, "barberId")
	if err != nil {
		h.logger.Warn("PUT /barbers/{id} - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /barbers/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	var req UpdateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	barber, err := h.service.Update(r.Context(), barberID, req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("PUT /barbers/{id} - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, barbers.ErrAccessDenied):
			h.logger.Warn("PUT /barbers/{id} - Access denied: barber_id=%s, user_id=%s", barberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/{id} - Invalid barber: barber_id=%s, error=%v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidBarber)

		default:
			h.logger.Error("PUT /barbers/{id} - Failed to update barber: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/{id} - Barber updated successfully: barber_id=%s, admin_id=%s", barberID, userID)
	handlers.RespondJSON(w, http.StatusOK, barber)
}
