package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	productRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/product"
)

// UseCase use case редактирования записи (перенос, смена барбера или услуги, заметки)
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	catalog         ServiceCatalog
	engines         EngineProvider
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	catalog ServiceCatalog,
	engines EngineProvider,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		catalog:         catalog,
		engines:         engines,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case редактирования записи
// Запись не конфликтует сама с собой: её прежнее время исключается из проверки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%s, user=%s, admin=%t", req.ID, req.UserID, req.IsAdmin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Все чтения и запись в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Текущая запись
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%s not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Права доступа: владелец или админ
		if !req.IsAdmin && current.CustomerID != req.UserID {
			uc.logger.Warn("UpdateAppointment: access denied for user=%s to appointment id=%s", req.UserID, req.ID)
			return ErrAccessDenied
		}

		// 2.3. Редактировать можно только активные записи
		if !current.CanBeEdited() {
			uc.logger.Warn("UpdateAppointment: appointment id=%s cannot be edited, status=%s", req.ID, current.Status)
			return ErrNotEditable
		}

		updated := applyChanges(current, req)

		// 2.4. Новая услуга должна быть в каталоге
		if req.Service != nil {
			if err := uc.checkService(txCtx, updated.Service); err != nil {
				return err
			}
		}

		// 2.5. Проверка доступности только при переносе
		if req.reschedules() {
			if err := uc.checkAvailability(txCtx, current, updated); err != nil {
				return err
			}
		}

		// 2.6. Сохраняем
		if err := uc.appointmentRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("UpdateAppointment: slot taken by concurrent booking: %v", err)
				return ErrSlotTaken
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%s: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentEvent(EventUpdated)
	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%s", result.ID)

	return &Response{Appointment: result}, nil
}

// checkAvailability проверяет новые барбера и время с исключением самой записи
func (uc *UseCase) checkAvailability(ctx context.Context, current, updated *domain.Appointment) error {
	engine, err := uc.engines.ForBarber(ctx, updated.BarberID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to resolve schedule for barber=%s: %v", updated.BarberID, err)
		return fmt.Errorf("%w: failed to resolve schedule: %v", ErrAvailabilityUnknown, err)
	}

	updated.DurationMinutes = engine.ResolveDuration(updated.DurationMinutes)

	validation := engine.ValidateAppointment(updated.BarberID, updated.StartAt, updated.Service)
	if !validation.Valid {
		uc.logger.Warn("UpdateAppointment: id=%s rejected: %v", current.ID, validation.Errors)
		return &ValidationError{Errors: validation.Errors}
	}

	if updated.BarberID != current.BarberID {
		barber, err := uc.barberRepo.GetByID(ctx, updated.BarberID)
		if err != nil {
			if errors.Is(err, barberRepo.ErrBarberNotFound) {
				return ErrBarberNotFound
			}
			return fmt.Errorf("%w: failed to get barber: %v", ErrAvailabilityUnknown, err)
		}
		if !barber.Active {
			return ErrBarberNotFound
		}
		updated.BarberName = &barber.Name
	}

	updated.StartAt = updated.StartAt.In(engine.Location())
	dayStart, dayEnd := engine.DayBounds(updated.StartAt)

	existing, err := uc.appointmentRepo.ListBlockingForDay(ctx, dayStart, dayEnd, &updated.BarberID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to load appointments for barber=%s: %v", updated.BarberID, err)
		return fmt.Errorf("%w: failed to load appointments: %v", ErrAvailabilityUnknown, err)
	}

	conflicts := availability.Conflicts(updated.BarberID, updated.StartAt, updated.DurationMinutes, engine.ResolveDurations(existing), &current.ID)
	if len(conflicts) > 0 {
		uc.logger.Warn("UpdateAppointment: id=%s, start=%s conflicts with appointment id=%s",
			current.ID, updated.StartAt.Format(time.RFC3339), conflicts[0].ID)
		return ErrSlotTaken
	}

	return nil
}

func (uc *UseCase) checkService(ctx context.Context, name string) error {
	if _, err := uc.catalog.GetServiceByName(ctx, name); err != nil {
		if errors.Is(err, productRepo.ErrServiceNotFound) {
			uc.logger.Warn("UpdateAppointment: service=%q is not in catalog", name)
			return &ValidationError{Errors: []string{availability.MsgUnknownService}}
		}
		uc.logger.Error("UpdateAppointment: failed to check service=%q: %v", name, err)
		return fmt.Errorf("%w: failed to check service: %v", ErrInternal, err)
	}
	return nil
}

func applyChanges(current *domain.Appointment, req *Request) *domain.Appointment {
	updated := *current

	if req.BarberID != nil {
		updated.BarberID = *req.BarberID
	}
	if req.Service != nil {
		updated.Service = strings.TrimSpace(*req.Service)
	}
	if req.StartAt != nil {
		updated.StartAt = *req.StartAt
	}
	if req.DurationMinutes != nil {
		updated.DurationMinutes = *req.DurationMinutes
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}

	return &updated
}
