package profile

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

// Repository репозиторий профилей клиентов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "COALESCE(full_name, '')", "COALESCE(email, '')").
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Profile
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.FullName, &p.Email)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	return &p, nil
}

// GetByIDs получает профили пачкой, ключ - ID профиля
// Отсутствующие профили просто не попадают в результат
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Profile, error) {
	result := make(map[uuid.UUID]*domain.Profile, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "COALESCE(full_name, '')", "COALESCE(email, '')").
		From("profiles").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.FullName, &p.Email); err != nil {
			return nil, fmt.Errorf("%w: GetByIDs - scan row: %v", ErrScanRow, err)
		}
		result[p.ID] = &p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
