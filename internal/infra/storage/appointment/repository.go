package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const (
	// Коды ошибок PostgreSQL
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

var selectColumns = []string{
	"a.id",
	"a.customer_id",
	"a.barber_id",
	"a.service",
	"a.start_at",
	"a.duration_minutes",
	"a.status",
	"a.notes",
	"b.name",
	"p.full_name",
	"a.created_at",
	"a.updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"customer_id",
			"barber_id",
			"service",
			"start_at",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			appt.ID,
			appt.CustomerID,
			appt.BarberID,
			appt.Service,
			appt.StartAt,
			appt.DurationMinutes,
			appt.Status,
			appt.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if isSlotViolation(err) {
			return nil, fmt.Errorf("%w: Create - barber=%s start=%s", ErrSlotTaken, appt.BarberID, appt.StartAt.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := baseSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrAppointmentNotFound
	}

	return appointments[0], nil
}

// List получает записи с фильтрацией
// Без явного статуса и IncludeInactive возвращает только scheduled/confirmed
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := baseSelect()

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.customer_id": *filter.CustomerID})
	}
	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.barber_id": *filter.BarberID})
	}

	// Фильтрация по периоду
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.start_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.start_at": *filter.To})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": string(*filter.Status)})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": statusStrings(domain.BlockingStatuses)})
	}

	query, args, err := selectBuilder.OrderBy("a.start_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListBlockingForDay получает scheduled/confirmed записи с началом в [dayStart, dayEnd)
// Если barberID не nil, только записи этого барбера.
// В транзакции строки блокируются (FOR UPDATE), чтобы проверка и вставка не гонялись.
func (r *Repository) ListBlockingForDay(ctx context.Context, dayStart, dayEnd time.Time, barberID *uuid.UUID) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := baseSelect().
		Where(squirrel.GtOrEq{"a.start_at": dayStart}).
		Where(squirrel.Lt{"a.start_at": dayEnd}).
		Where(squirrel.Eq{"a.status": statusStrings(domain.BlockingStatuses)}).
		OrderBy("a.start_at ASC")

	if barberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.barber_id": *barberID})
	}

	// Блокируем только строки appointments, LEFT JOIN таблицы блокировать нельзя
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Update обновляет редактируемые поля записи: барбер, услуга, время, длительность, заметки
func (r *Repository) Update(ctx context.Context, appt *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("barber_id", appt.BarberID).
		Set("service", appt.Service).
		Set("start_at", appt.StartAt).
		Set("duration_minutes", appt.DurationMinutes).
		Set("notes", appt.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSlotViolation(err) {
			return fmt.Errorf("%w: Update - id=%s", ErrSlotTaken, appt.ID)
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isSlotViolation(err) {
			return fmt.Errorf("%w: UpdateStatus - id=%s", ErrSlotTaken, id)
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// Delete удаляет запись (физическое удаление)
// Для истории лучше использовать отмену
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("appointments a").
		LeftJoin("barbers b ON b.id = a.barber_id").
		LeftJoin("profiles p ON p.id = a.customer_id")
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var status string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.BarberID,
			&appt.Service,
			&appt.StartAt,
			&appt.DurationMinutes,
			&status,
			&appt.Notes,
			&appt.BarberName,
			&appt.CustomerName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.Status = domain.AppointmentStatus(status)
		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// isSlotViolation уникальный индекс (barber_id, start_at) или exclusion constraint по интервалу
func isSlotViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgUniqueViolation || pqErr.Code == pgExclusionViolation
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
