package deactivate_barber

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

const (
	msgInvalidBarberID = "identificador de barbero inválido"
	msgMissingUserID   = "falta el identificador de usuario"
	msgNotFound        = "barbero no encontrado"
	msgForbidden       = "acceso denegado"
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

// Handle PATCH /api/v1/barbers/{barberId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := handlers.PathUUID(r, "barberId")
	if err != nil {
		h.logger.Warn("PATCH /barbers/{id}/deactivate - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /barbers/{id}/deactivate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	barber, err := h.service.Deactivate(r.Context(), barberID, actor)
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrBarberNotFound):
			h.logger.Warn("PATCH /barbers/{id}/deactivate - Barber not found: barber_id=%s", barberID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, barbers.ErrAccessDenied):
			h.logger.Warn("PATCH /barbers/{id}/deactivate - Access denied: barber_id=%s, user_id=%s", barberID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /barbers/{id}/deactivate - Failed to deactivate barber: barber_id=%s, error=%v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /barbers/{id}/deactivate - Barber deactivated: barber_id=%s, admin_id=%s", barberID, userID)
	handlers.RespondJSON(w, http.StatusOK, barber)
}
