package barber

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var barberColumns = []string{"id", "name", "specialty", "active", "created_at"}

// Repository репозиторий барберов и их персональных расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория барберов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает барбера по ID (в том числе неактивного)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(barberColumns...).
		From("barbers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var barber domain.Barber
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&barber.ID,
		&barber.Name,
		&barber.Specialty,
		&barber.Active,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan barber: %v", ErrScanRow, err)
	}

	barber.CreatedAt = createdAt.Time

	return &barber, nil
}

// ListActive получает активных барберов, отсортированных по имени
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Barber, error) {
	return r.List(ctx, false)
}

// List получает барберов, отсортированных по имени
// includeInactive добавляет деактивированных барберов
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	qb := psqlbuilder.Select(barberColumns...).
		From("barbers").
		OrderBy("name ASC")
	if !includeInactive {
		qb = qb.Where(squirrel.Eq{"active": true})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		var barber domain.Barber
		var createdAt sql.NullTime

		if err := rows.Scan(&barber.ID, &barber.Name, &barber.Specialty, &barber.Active, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barber.CreatedAt = createdAt.Time
		barbers = append(barbers, &barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// Create создает барбера
func (r *Repository) Create(ctx context.Context, barber *domain.Barber) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if barber.ID == uuid.Nil {
		barber.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("barbers").
		Columns("id", "name", "specialty", "active").
		Values(barber.ID, barber.Name, barber.Specialty, barber.Active).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	barber.CreatedAt = createdAt.Time

	return barber, nil
}

// Update обновляет имя, специальность и признак активности барбера
func (r *Repository) Update(ctx context.Context, barber *domain.Barber) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("name", barber.Name).
		Set("specialty", barber.Specialty).
		Set("active", barber.Active).
		Where(squirrel.Eq{"id": barber.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// SetActive включает или выключает барбера. Барберы не удаляются, чтобы сохранить историю записей
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "SetActive")
}

// GetSchedule получает персональное расписание барбера из barber_schedules
// day_of_week: 0 = воскресенье ... 6 = суббота.
// Если строк нет, возвращает ErrScheduleNotFound - вызывающий использует общее расписание.
func (r *Repository) GetSchedule(ctx context.Context, barberID uuid.UUID) (*domain.BusinessHoursSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "start_time", "end_time").
		From("barber_schedules").
		Where(squirrel.Eq{"barber_id": barberID}).
		OrderBy("day_of_week ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	byWeekday := make(map[time.Weekday][]domain.OpenInterval)
	found := false

	for rows.Next() {
		var day int
		var start, end types.TimeString

		if err := rows.Scan(&day, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetSchedule - scan row: %v", ErrScanRow, err)
		}
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("%w: GetSchedule - day_of_week %d", ErrInvalidSchedule, day)
		}

		byWeekday[time.Weekday(day)] = append(byWeekday[time.Weekday(day)], domain.OpenInterval{Start: start, End: end})
		found = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, ErrScheduleNotFound
	}

	schedule, err := domain.NewWeeklySchedule(byWeekday)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - barber=%s: %v", ErrInvalidSchedule, barberID, err)
	}

	return schedule, nil
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBarberNotFound
	}
	return nil
}
