package list_barbers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

const (
	msgInvalidIncludeInactive = "parámetro includeInactive inválido"
	msgForbidden              = "acceso denegado"
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

// Handle GET /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive, err := ParseIncludeInactive(r)
	if err != nil {
		h.logger.Warn("GET /barbers - Invalid includeInactive: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeInactive)
		return
	}

	// Пользователь необязателен: анонимный запрос видит только активных
	userID, _ := middleware.GetUserID(r.Context())
	actor := models.Actor{UserID: userID, IsAdmin: middleware.IsAdmin(r.Context())}

	result, err := h.service.List(r.Context(), includeInactive, actor)
	if err != nil {
		if errors.Is(err, barbers.ErrAccessDenied) {
			h.logger.Warn("GET /barbers - Access denied to inactive barbers: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /barbers - Failed to list barbers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /barbers - Barbers retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
