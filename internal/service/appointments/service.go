package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// События для метрик
const (
	EventCanceled  = "canceled"
	EventCompleted = "completed"
	EventConfirmed = "confirmed"
	EventDeleted   = "deleted"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	metrics         Metrics
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		metrics:         metrics,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Пользователь видит только свою запись, админ - любую
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, actor models.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, actor.UserID)

	appt, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if err := checkOwnerAccess(appt, actor); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", actor.UserID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(appt, s.location), nil
}

// List получает записи с фильтрацией
// Админ видит все записи, пользователь - только свои
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%s, admin=%t, includeInactive=%t",
		req.Actor.UserID, req.Actor.IsAdmin, req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%s: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", req.Actor.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for user=%s", len(appointments), req.Actor.UserID)
	return models.FromDomainAppointmentList(appointments, s.location), nil
}

// Cancel отменяет запись
// Владелец или админ; только scheduled/confirmed
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, actor models.Actor) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, actor.UserID)

	appt, err := s.get(ctx, "Cancel", id)
	if err != nil {
		return err
	}

	if err := checkOwnerAccess(appt, actor); err != nil {
		s.logger.Warn("Cancel: access denied for user=%s to appointment id=%s", actor.UserID, id)
		return err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, appt.Status)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, domain.StatusCanceled)
	}

	if err := s.setStatus(ctx, "Cancel", id, domain.StatusCanceled); err != nil {
		return err
	}

	s.metrics.IncAppointmentEvent(EventCanceled)
	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// Complete отмечает запись выполненной (только админ)
func (s *Service) Complete(ctx context.Context, id uuid.UUID, actor models.Actor) error {
	return s.adminTransition(ctx, "Complete", id, actor, domain.StatusCompleted, EventCompleted)
}

// Confirm подтверждает запись (только админ)
func (s *Service) Confirm(ctx context.Context, id uuid.UUID, actor models.Actor) error {
	return s.adminTransition(ctx, "Confirm", id, actor, domain.StatusConfirmed, EventConfirmed)
}

// UpdateStatus меняет статус записи
// canceled - владелец или админ, completed/confirmed - только админ
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s by user=%s", id, req.Status, req.Actor.UserID)

	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	switch status {
	case domain.StatusCanceled:
		return s.Cancel(ctx, id, req.Actor)
	case domain.StatusCompleted:
		return s.Complete(ctx, id, req.Actor)
	case domain.StatusConfirmed:
		return s.Confirm(ctx, id, req.Actor)
	default:
		return fmt.Errorf("%w: cannot set status %s", ErrInvalidTransition, status)
	}
}

// Delete физически удаляет запись (только админ)
func (s *Service) Delete(ctx context.Context, id uuid.UUID, actor models.Actor) error {
	s.logger.Info("Delete: deleting appointment id=%s by user=%s", id, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("Delete: access denied for user=%s", actor.UserID)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentEvent(EventDeleted)
	s.logger.Info("Delete: successfully deleted appointment id=%s", id)
	return nil
}

func (s *Service) adminTransition(
	ctx context.Context,
	op string,
	id uuid.UUID,
	actor models.Actor,
	status domain.AppointmentStatus,
	event string,
) error {
	s.logger.Info("%s: appointment id=%s by user=%s", op, id, actor.UserID)

	if !actor.IsAdmin {
		s.logger.Warn("%s: access denied for user=%s", op, actor.UserID)
		return ErrAccessDenied
	}

	appt, err := s.get(ctx, op, id)
	if err != nil {
		return err
	}

	// Завершить и подтвердить можно только активную запись
	if !appt.IsBlocking() || appt.Status == status {
		s.logger.Warn("%s: appointment id=%s has status=%s", op, id, appt.Status)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, status)
	}

	if err := s.setStatus(ctx, op, id, status); err != nil {
		return err
	}

	s.metrics.IncAppointmentEvent(event)
	s.logger.Info("%s: successfully set status=%s for appointment id=%s", op, status, id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}

func (s *Service) setStatus(ctx context.Context, op string, id uuid.UUID, status domain.AppointmentStatus) error {
	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found during update", op, id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

// checkOwnerAccess владелец записи или админ
func checkOwnerAccess(appt *domain.Appointment, actor models.Actor) error {
	if actor.IsAdmin || appt.CustomerID == actor.UserID {
		return nil
	}
	return ErrAccessDenied
}
