package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/availability"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	barberRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/barber"
	productRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/product"
)

const notifyTimeout = 30 * time.Second

// UseCase use case создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	catalog         ServiceCatalog
	engines         EngineProvider
	notifier        Notifier
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger

	// Отправки подтверждений, которые еще выполняются
	pending sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
// notifier может быть nil - тогда подтверждения не отправляются
func NewUseCase(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	catalog ServiceCatalog,
	engines EngineProvider,
	notifier Notifier,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		catalog:         catalog,
		engines:         engines,
		notifier:        notifier,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: customer=%s, barber=%s, service=%q, start=%s",
		req.CustomerID, req.BarberID, req.Service, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбираем расписание барбера
	engine := uc.engines.Base()
	if req.BarberID != uuid.Nil {
		var err error
		engine, err = uc.engines.ForBarber(ctx, req.BarberID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to resolve schedule for barber=%s: %v", req.BarberID, err)
			return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrAvailabilityUnknown, err)
		}
	}

	// 3. Бизнес-правила
	validation := engine.ValidateAppointment(req.BarberID, req.StartAt, req.Service)
	if !validation.Valid {
		uc.logger.Warn("CreateAppointment: rejected: %v", validation.Errors)
		uc.metrics.IncAppointmentEvent(EventRejected)
		return nil, &ValidationError{Errors: validation.Errors}
	}

	// 3.1. Услуга должна быть в каталоге
	if err := uc.checkService(ctx, req.Service); err != nil {
		return nil, err
	}

	// 4. Барбер должен существовать и работать
	barber, err := uc.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateAppointment: barber=%s not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get barber=%s: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrAvailabilityUnknown, err)
	}
	if !barber.Active {
		uc.logger.Warn("CreateAppointment: barber=%s is inactive", req.BarberID)
		return nil, ErrBarberNotFound
	}

	duration := engine.ResolveDuration(req.DurationMinutes)
	dayStart, dayEnd := engine.DayBounds(req.StartAt.In(engine.Location()))

	var result *domain.Appointment

	// 5. Проверка конфликта и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Записи барбера на этот день с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.ListBlockingForDay(txCtx, dayStart, dayEnd, &req.BarberID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to load appointments for barber=%s: %v", req.BarberID, err)
			return fmt.Errorf("%w: failed to load appointments: %v", ErrAvailabilityUnknown, err)
		}

		// 5.2. Проверяем пересечения
		if conflicts := availability.Conflicts(req.BarberID, req.StartAt, duration, engine.ResolveDurations(existing), nil); len(conflicts) > 0 {
			uc.logger.Warn("CreateAppointment: barber=%s, start=%s conflicts with appointment id=%s",
				req.BarberID, req.StartAt.Format(time.RFC3339), conflicts[0].ID)
			return ErrSlotTaken
		}

		// 5.3. Создаем запись
		appt := &domain.Appointment{
			CustomerID:      req.CustomerID,
			BarberID:        req.BarberID,
			Service:         strings.TrimSpace(req.Service),
			StartAt:         req.StartAt.In(engine.Location()),
			DurationMinutes: duration,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot taken by concurrent booking: %v", err)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.metrics.IncAppointmentEvent(EventConflict)
			return nil, err
		}
		if errors.Is(err, ErrAvailabilityUnknown) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	result.BarberName = &barber.Name
	uc.metrics.IncAppointmentEvent(EventCreated)
	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// 6. Подтверждение отправляем после коммита, ошибка отправки запись не отменяет
	uc.notify(ctx, result)

	return &Response{Appointment: result}, nil
}

func (uc *UseCase) checkService(ctx context.Context, service string) error {
	name := strings.TrimSpace(service)
	if _, err := uc.catalog.GetServiceByName(ctx, name); err != nil {
		if errors.Is(err, productRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service=%q is not in catalog", name)
			uc.metrics.IncAppointmentEvent(EventRejected)
			return &ValidationError{Errors: []string{availability.MsgUnknownService}}
		}
		uc.logger.Error("CreateAppointment: failed to check service=%q: %v", name, err)
		return fmt.Errorf("%w: failed to check service: %v", ErrInternal, err)
	}
	return nil
}

func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment) {
	if uc.notifier == nil {
		return
	}

	snapshot := *appt
	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()

		notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyAppointment(notifyCtx, &snapshot); err != nil {
			uc.logger.Warn("CreateAppointment: failed to notify about appointment id=%s: %v", snapshot.ID, err)
			return
		}
		uc.logger.Info("CreateAppointment: confirmation sent for appointment id=%s", snapshot.ID)
	}()
}

// Wait ждет завершения отправок подтверждений, начатых до вызова, или отмены ctx.
// Вызывается при остановке сервиса после того, как HTTP сервер перестал принимать запросы
func (uc *UseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
