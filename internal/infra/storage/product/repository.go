package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

// В таблице products услуги хранятся с is_service = 0, товары склада с is_service = 1
const serviceFlag = 0

var productColumns = []string{"id", "name", "category", "price"}

// Repository каталог услуг (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices получает все услуги, отсортированные по имени
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"is_service": serviceFlag}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetServiceByName ищет услугу по точному имени, под которым она сохраняется в записи
func (r *Repository) GetServiceByName(ctx context.Context, name string) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"is_service": serviceFlag, "name": name}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByName - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Product
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, &p.Category, &p.Price)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByName - scan service: %v", ErrScanRow, err)
	}

	return &p, nil
}
