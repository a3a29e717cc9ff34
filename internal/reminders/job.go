package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Result итог одного прогона
type Result struct {
	Appointments int // Записей на сегодня
	Customers    int // Клиентов с записями
	Sent         int
	Skipped      int // Нет профиля или e-mail
	Failed       int
}

// Job рассылает клиентам напоминания о сегодняшних записях
type Job struct {
	appointmentRepo AppointmentRepository
	profileRepo     ProfileRepository
	notifier        Notifier
	clock           Clock
	logger          Logger
}

// NewJob создает задачу рассылки напоминаний
func NewJob(
	appointmentRepo AppointmentRepository,
	profileRepo ProfileRepository,
	notifier Notifier,
	clock Clock,
	logger Logger,
) *Job {
	return &Job{
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		notifier:        notifier,
		clock:           clock,
		logger:          logger,
	}
}

// Run отправляет одно письмо на клиента со всеми его записями на сегодня
// Ошибка отправки одному клиенту не прерывает рассылку
func (j *Job) Run(ctx context.Context) (*Result, error) {
	// 1. Границы сегодняшнего дня в часовом поясе заведения
	dayStart, dayEnd := j.clock.DayBounds(j.clock.Now())
	j.logger.Info("Reminders: collecting appointments for %s", dayStart.Format(domain.DateFormat))

	// 2. Активные записи на сегодня, по возрастанию start_at
	appointments, err := j.appointmentRepo.ListBlockingForDay(ctx, dayStart, dayEnd, nil)
	if err != nil {
		j.logger.Error("Reminders: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLoadAppointments, err)
	}

	result := &Result{Appointments: len(appointments)}
	if len(appointments) == 0 {
		j.logger.Info("Reminders: no appointments today")
		return result, nil
	}

	// 3. Группируем по клиенту с сохранением порядка
	customerIDs, groups := groupByCustomer(appointments)
	result.Customers = len(customerIDs)

	// 4. Профили одним запросом
	profiles, err := j.profileRepo.GetByIDs(ctx, customerIDs)
	if err != nil {
		j.logger.Error("Reminders: failed to load profiles: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrLoadProfiles, err)
	}

	// 5. Рассылка
	for _, customerID := range customerIDs {
		if err := ctx.Err(); err != nil {
			j.logger.Warn("Reminders: interrupted after sent=%d: %v", result.Sent, err)
			return result, err
		}

		profile, ok := profiles[customerID]
		if !ok || !profile.HasEmail() {
			result.Skipped++
			continue
		}

		if err := j.notifier.SendReminder(ctx, profile, groups[customerID]); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return result, err
			}
			result.Failed++
			j.logger.Error("Reminders: failed to notify customer=%s: %v", customerID, err)
			continue
		}
		result.Sent++
	}

	j.logger.Info("Reminders: done, customers=%d sent=%d skipped=%d failed=%d",
		result.Customers, result.Sent, result.Skipped, result.Failed)
	return result, nil
}

func groupByCustomer(appointments []*domain.Appointment) ([]uuid.UUID, map[uuid.UUID][]*domain.Appointment) {
	order := make([]uuid.UUID, 0)
	groups := make(map[uuid.UUID][]*domain.Appointment)

	for _, a := range appointments {
		if _, seen := groups[a.CustomerID]; !seen {
			order = append(order, a.CustomerID)
		}
		groups[a.CustomerID] = append(groups[a.CustomerID], a)
	}

	return order, groups
}
