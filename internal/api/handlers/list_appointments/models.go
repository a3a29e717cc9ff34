package list_appointments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// from и to - даты YYYY-MM-DD включительно, в часовом поясе заведения
func ToServiceRequest(actor models.Actor, query url.Values, loc *time.Location) (*models.ListRequest, error) {
	req := &models.ListRequest{
		Actor:           actor,
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим barberId если указан
	if raw := query.Get("barberId"); raw != "" {
		barberID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		req.BarberID = &barberID
	}

	// Парсим customerId если указан (учитывается только для админа)
	if raw := query.Get("customerId"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		req.CustomerID = &customerID
	}

	if raw := query.Get("from"); raw != "" {
		from, err := handlers.ParseDate(raw, loc)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := handlers.ParseDate(raw, loc)
		if err != nil {
			return nil, err
		}
		// Конец периода не включительно: начало следующего дня
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	// Фильтр по статусу неактивных записей подразумевает includeInactive
	if req.Status != nil && (*req.Status == string(domain.StatusCompleted) || *req.Status == string(domain.StatusCanceled)) {
		req.IncludeInactive = true
	}

	return req, nil
}
