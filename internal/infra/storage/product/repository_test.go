package product

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "category", "price"}

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_ListServices(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`SELECT id, name, category, price FROM products WHERE is_service = \$1 ORDER BY name ASC`).
		WithArgs(0).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "Barba", nil, []byte("15000.00")).
			AddRow(uuid.NewString(), "Corte", "Cabello", []byte("25000.00")))

	services, err := repo.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Barba", services[0].Name)
	assert.Nil(t, services[0].Category)
	assert.Equal(t, 15000.0, services[0].Price)
	require.NotNil(t, services[1].Category)
	assert.Equal(t, "Cabello", *services[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListServices_QueryError(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(`FROM products`).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListServices(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetServiceByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`SELECT id, name, category, price FROM products WHERE is_service = \$1 AND name = \$2 LIMIT 1`).
			WithArgs(0, "Corte").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(uuid.NewString(), "Corte", nil, []byte("25000")))

		service, err := repo.GetServiceByName(context.Background(), "Corte")
		require.NoError(t, err)
		assert.Equal(t, "Corte", service.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMock(t)

		mock.ExpectQuery(`FROM products`).WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetServiceByName(context.Background(), "Masaje")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
