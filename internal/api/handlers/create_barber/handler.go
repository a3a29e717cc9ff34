package create_barber

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgMissingUserID      = "falta el identificador de usuario"
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

// Handle POST /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /barbers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	var req CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	barber, err := h.service.Create(r.Context(), req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, barbers.ErrAccessDenied):
			h.logger.Warn("POST /barbers - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, barbers.ErrInvalidInput):
			h.logger.Warn("POST /barbers - Invalid barber: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBarber)

		default:
			h.logger.Error("POST /barbers - Failed to create barber: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers - Barber created successfully: barber_id=%s, admin_id=%s", barber.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, barber)
}
