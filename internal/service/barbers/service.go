package barbers

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	"github.com/m04kA/SMC-BarberBooking/internal/service/barbers/models"
)

// Service сервис управления составом барберов
// Барберы не удаляются: деактивированный барбер пропадает из записи, но остается в истории
type Service struct {
	barberRepo BarberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса барберов
func NewService(barberRepo BarberRepository, logger Logger) *Service {
	return &Service{
		barberRepo: barberRepo,
		logger:     logger,
	}
}

// List получает барберов. Неактивных видит только админ
func (s *Service) List(ctx context.Context, includeInactive bool, actor models.Actor) ([]*models.BarberResponse, error) {
	if includeInactive && !actor.IsAdmin {
		s.logger.Warn("List: user=%s requested inactive barbers without admin role", actor.UserID)
		return nil, ErrAccessDenied
	}

	barbers, err := s.barberRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d barbers (includeInactive=%t)", len(barbers), includeInactive)
	return models.FromDomainBarberList(barbers), nil
}

// Create добавляет барбера (только админ)
func (s *Service) Create(ctx context.Context, req *models.CreateBarberRequest) (*models.BarberResponse, error) {
	if !req.Actor.IsAdmin {
		s.logger.Warn("Create: access denied for user=%s", req.Actor.UserID)
		return nil, ErrAccessDenied
	}

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.barberRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: barber id=%s created by admin=%s", created.ID, req.Actor.UserID)
	return models.FromDomainBarber(created), nil
}

// Update изменяет имя, специальность или активность барбера (только админ)
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBarberRequest) (*models.BarberResponse, error) {
	if !req.Actor.IsAdmin {
		s.logger.Warn("Update: access denied for user=%s to barber id=%s", req.Actor.UserID, id)
		return nil, ErrAccessDenied
	}

	current, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	updated, err := req.Apply(current)
	if err != nil {
		s.logger.Warn("Update: invalid request for barber id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.barberRepo.Update(ctx, updated); err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: barber id=%s updated by admin=%s", id, req.Actor.UserID)
	return models.FromDomainBarber(updated), nil
}

// Deactivate выключает барбера (только админ). Существующие записи не трогаются
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.BarberResponse, error) {
	if !actor.IsAdmin {
		s.logger.Warn("Deactivate: access denied for user=%s to barber id=%s", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	if err := s.barberRepo.SetActive(ctx, id, false); err != nil {
		return nil, s.mapRepoError("Deactivate", id, err)
	}

	barber, err := s.get(ctx, "Deactivate", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Deactivate: barber id=%s deactivated by admin=%s", id, actor.UserID)
	return models.FromDomainBarber(barber), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Barber, error) {
	barber, err := s.barberRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(op, id, err)
	}
	return barber, nil
}

func (s *Service) mapRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, barberRepo.ErrBarberNotFound) {
		s.logger.Warn("%s: barber id=%s not found", op, id)
		return ErrBarberNotFound
	}
	s.logger.Error("%s: repository error for barber id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
