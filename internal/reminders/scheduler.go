package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultSpec каждый день в 07:00 по времени заведения
const DefaultSpec = "0 7 * * *"

// Scheduler запускает Job по cron расписанию
type Scheduler struct {
	cron    *cron.Cron
	job     *Job
	timeout time.Duration
	logger  Logger
}

// NewScheduler создает планировщик, spec - стандартное cron выражение из пяти полей
func NewScheduler(job *Job, spec string, location *time.Location, timeout time.Duration, logger Logger) (*Scheduler, error) {
	if location == nil {
		location = time.UTC
	}
	if spec == "" {
		spec = DefaultSpec
	}

	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(location)),
		job:     job,
		timeout: timeout,
		logger:  logger,
	}

	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSpec, spec, err)
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Reminders scheduler started, next run at %s", s.Next().Format(time.RFC3339))
}

// Stop останавливает планировщик и ждет завершения текущего прогона или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("Reminders scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next время следующего запуска
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Scheduler) runOnce() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.job.Run(ctx); err != nil {
		s.logger.Error("Reminders: run failed: %v", err)
	}
}
