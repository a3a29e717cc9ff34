package get_available_slots

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

// UseCase use case для получения слотов дня по барберам
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	engines         EngineProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	engines EngineProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		engines:         engines,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	barberLog := "all"
	if req.BarberID != nil {
		barberLog = req.BarberID.String()
	}
	uc.logger.Info("GetAvailableSlots: date=%s, barber=%s, duration=%d",
		req.Date.Format(domain.DateFormat), barberLog, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	base := uc.engines.Base()
	duration := base.ResolveDuration(req.DurationMinutes)
	dayStart, dayEnd := base.DayBounds(req.Date)

	response := &Response{
		Date:            dayStart,
		DayName:         base.DayName(dayStart),
		DurationMinutes: duration,
		Barbers:         []BarberSlots{},
	}

	// 2. Прошедшие дни не показываем
	if !dayEnd.After(base.Now()) {
		uc.logger.Info("GetAvailableSlots: date=%s is in the past", req.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 3. Получаем барберов
	barbers, err := uc.loadBarbers(ctx, req.BarberID)
	if err != nil {
		return nil, err
	}

	// 4. Один раз загружаем блокирующие записи дня
	existing, err := uc.appointmentRepo.ListBlockingForDay(ctx, dayStart, dayEnd, req.BarberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load appointments for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to load appointments: %v", ErrAvailabilityUnknown, err)
	}

	// 5. Считаем доступность в памяти по одному снимку
	engines := make([]*availability.Engine, 0, len(barbers))
	for _, barber := range barbers {
		engine, err := uc.engines.ForBarber(ctx, barber.ID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to resolve schedule for barber=%s: %v", barber.ID, err)
			return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrAvailabilityUnknown, err)
		}

		engines = append(engines, engine)

		days, err := engine.DayAvailability(dayStart, duration, []uuid.UUID{barber.ID}, existing)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		response.Barbers = append(response.Barbers, BarberSlots{
			Barber: barber,
			Slots:  days[0].Slots,
		})
	}

	// 6. Если свободных слотов нет, подсказываем ближайшее время работы
	if response.AvailableCount() == 0 {
		from := dayEnd
		if now := base.Now(); now.After(from) {
			from = now
		}
		response.NextOpening = uc.nextOpening(base, engines, from, duration)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, barbers=%d, available=%d, existing=%d",
		req.Date.Format(domain.DateFormat), len(response.Barbers), response.AvailableCount(), len(existing))

	return response, nil
}

// nextOpening ближайшее время работы по расписаниям запрошенных барберов.
// Без барберов используется расписание заведения
func (uc *UseCase) nextOpening(base *availability.Engine, engines []*availability.Engine, from time.Time, duration int) *time.Time {
	if len(engines) == 0 {
		engines = []*availability.Engine{base}
	}

	var earliest *time.Time
	for _, engine := range engines {
		next, ok, err := engine.NextOpening(from, duration)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: failed to find next opening: %v", err)
			continue
		}
		if ok && (earliest == nil || next.Before(*earliest)) {
			earliest = &next
		}
	}
	return earliest
}

func (uc *UseCase) loadBarbers(ctx context.Context, barberID *uuid.UUID) ([]*domain.Barber, error) {
	if barberID == nil {
		barbers, err := uc.barberRepo.ListActive(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list barbers: %v", err)
			return nil, fmt.Errorf("%w: failed to list barbers: %v", ErrAvailabilityUnknown, err)
		}
		return barbers, nil
	}

	barber, err := uc.barberRepo.GetByID(ctx, *barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber=%s not found", *barberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber=%s: %v", *barberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrAvailabilityUnknown, err)
	}

	if !barber.Active {
		uc.logger.Warn("GetAvailableSlots: barber=%s is inactive", *barberID)
		return nil, ErrBarberNotFound
	}

	return []*domain.Barber{barber}, nil
}
