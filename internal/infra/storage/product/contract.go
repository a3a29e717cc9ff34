package product

import (
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
