package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "la fecha es obligatoria"
	msgInvalidDate         = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidBarberID     = "identificador de barbero inválido"
	msgInvalidDuration     = "duración inválida"
	msgBarberNotFound      = "barbero no encontrado"
	msgAvailabilityUnknown = "no se pudo verificar la disponibilidad, intenta de nuevo"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: date (required, YYYY-MM-DD), barberId, duration (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	barberID, err := handlers.QueryUUID(r, "barberId")
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid barber ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBarberID)
		return
	}

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(date, barberID, query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrBarberNotFound):
			h.logger.Warn("GET /availability/slots - Barber not found: barber_id=%s", query.Get("barberId"))
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, getAvailableSlots.ErrAvailabilityUnknown):
			h.logger.Error("GET /availability/slots - Availability unknown: date=%s, error=%v", dateStr, err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnknown)

		default:
			h.logger.Error("GET /availability/slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability/slots - Slots retrieved successfully: date=%s, barbers=%d, available=%d",
		dateStr, len(response.Barbers), response.AvailableCount)
	handlers.RespondJSON(w, http.StatusOK, response)
}
