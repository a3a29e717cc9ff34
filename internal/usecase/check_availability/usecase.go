package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
)

// UseCase use case проверки доступности одной записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	engines         EngineProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	engines EngineProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		engines:         engines,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет проверку: валидация, затем конфликт с записями дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: barber=%s, start=%s, duration=%d",
		req.BarberID, formatStart(req.StartAt), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбираем расписание барбера
	engine := uc.engines.Base()
	if req.BarberID != uuid.Nil {
		var err error
		engine, err = uc.engines.ForBarber(ctx, req.BarberID)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to resolve schedule for barber=%s: %v", req.BarberID, err)
			uc.metrics.IncAvailabilityCheck(OutcomeUnknown)
			return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrAvailabilityUnknown, err)
		}
	}

	domainReq := domain.AppointmentRequest{
		BarberID:        req.BarberID,
		Service:         req.Service,
		StartAt:         req.StartAt,
		DurationMinutes: req.DurationMinutes,
		ExcludeID:       req.ExcludeID,
	}

	response := &Response{DurationMinutes: engine.ResolveDuration(req.DurationMinutes)}
	if !req.StartAt.IsZero() {
		response.DayName = engine.DayName(req.StartAt)
	}

	// 3. Бизнес-правила. При ошибках в хранилище не ходим
	validation := engine.ValidateAppointment(req.BarberID, req.StartAt, req.Service)
	if !validation.Valid {
		uc.logger.Info("CheckAvailability: barber=%s, start=%s rejected: %v",
			req.BarberID, formatStart(req.StartAt), validation.Errors)
		uc.metrics.IncAvailabilityCheck(OutcomeInvalid)
		response.Decision = engine.Check(domainReq, nil)
		return response, nil
	}

	// 4. Барбер должен существовать и работать
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CheckAvailability: barber=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get barber=%s: %v", req.BarberID, err)
		uc.metrics.IncAvailabilityCheck(OutcomeUnknown)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrAvailabilityUnknown, err)
	}
	if !barber.Active {
		uc.logger.Warn("CheckAvailability: barber=%s is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	// 5. Записи барбера на этот день
	dayStart, dayEnd := engine.DayBounds(req.StartAt.In(engine.Location()))
	existing, err := uc.appointmentRepo.ListBlockingForDay(ctx, dayStart, dayEnd, &req.BarberID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to load appointments for barber=%s: %v", req.BarberID, err)
		uc.metrics.IncAvailabilityCheck(OutcomeUnknown)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrAvailabilityUnknown, err)
	}

	// 6. Итоговое решение
	response.Decision = engine.Check(domainReq, existing)

	if response.Decision.Conflict {
		conflicts := availability.Conflicts(req.BarberID, req.StartAt, response.DurationMinutes, engine.ResolveDurations(existing), req.ExcludeID)
		uc.logger.Info("CheckAvailability: barber=%s, start=%s conflicts with %d appointment(s)",
			req.BarberID, formatStart(req.StartAt), len(conflicts))
		uc.metrics.IncAvailabilityCheck(OutcomeConflict)
	} else {
		uc.logger.Info("CheckAvailability: barber=%s, start=%s is available", req.BarberID, formatStart(req.StartAt))
		uc.metrics.IncAvailabilityCheck(OutcomeAvailable)
	}

	return response, nil
}

func formatStart(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.RFC3339)
}
