package product

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в каталоге
	ErrServiceNotFound = errors.New("product.repository: service not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("product.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("product.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("product.repository: failed to scan row")
)
