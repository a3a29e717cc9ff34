package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
)

// Service выбирает расписание для барбера с учетом иерархии:
// 1. Персональное расписание барбера (barber_schedules)
// 2. Общее расписание заведения (из конфига)
type Service struct {
	repo      BarberScheduleRepository
	engine    *availability.Engine
	perBarber bool
	logger    Logger
}

// NewService создает сервис расписаний
// Если perBarber = false, персональные расписания не читаются
func NewService(repo BarberScheduleRepository, engine *availability.Engine, perBarber bool, logger Logger) *Service {
	return &Service{
		repo:      repo,
		engine:    engine,
		perBarber: perBarber,
		logger:    logger,
	}
}

// Base возвращает движок с общим расписанием заведения
func (s *Service) Base() *availability.Engine {
	return s.engine
}

// ForBarber возвращает движок с расписанием барбера
// Ошибка хранилища не подменяется общим расписанием: доступность неизвестна
func (s *Service) ForBarber(ctx context.Context, barberID uuid.UUID) (*availability.Engine, error) {
	if !s.perBarber || barberID == uuid.Nil {
		return s.engine, nil
	}

	schedule, err := s.repo.GetSchedule(ctx, barberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrScheduleNotFound) {
			return s.engine, nil
		}
		s.logger.Error("ForBarber: failed to load schedule for barber=%s: %v", barberID, err)
		return nil, fmt.Errorf("%w: ForBarber - barber=%s: %v", ErrScheduleUnavailable, barberID, err)
	}

	s.logger.Info("ForBarber: using personal schedule for barber=%s", barberID)
	return s.engine.WithSchedule(schedule), nil
}
