package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidPeriod возвращается, если конец периода раньше начала
	ErrInvalidPeriod = errors.New("invalid period")
)

// Actor пользователь, от имени которого выполняется операция
// Заголовки X-User-ID / X-User-Role выставляет gateway
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Actor  Actor
	Status string
}

// ListRequest запрос на получение списка записей
// Для не-админа всегда возвращаются только его записи
type ListRequest struct {
	Actor           Actor
	BarberID        *uuid.UUID
	CustomerID      *uuid.UUID // Учитывается только для админа
	From            *time.Time
	To              *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BarberID:        r.BarberID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Actor.IsAdmin {
		filter.CustomerID = r.CustomerID
	} else {
		customerID := r.Actor.UserID
		filter.CustomerID = &customerID
	}

	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return filter, ErrInvalidPeriod
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerID      uuid.UUID `json:"customerId"`
	CustomerName    *string   `json:"customerName,omitempty"`
	BarberID        uuid.UUID `json:"barberId"`
	BarberName      *string   `json:"barberName,omitempty"`
	Service         string    `json:"service"`
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	Date            string    `json:"date"` // "2025-03-10"
	Time            string    `json:"time"` // "10:00"
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Время отдается в часовом поясе заведения
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	startAt := a.StartAt.In(loc)

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerID:      a.CustomerID,
		CustomerName:    a.CustomerName,
		BarberID:        a.BarberID,
		BarberName:      a.BarberName,
		Service:         a.Service,
		StartAt:         startAt,
		EndAt:           a.EndAt().In(loc),
		Date:            startAt.Format(domain.DateFormat),
		Time:            startAt.Format(domain.TimeFormat),
		DurationMinutes: int(a.Duration() / time.Minute),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if dto := FromDomainAppointment(a, loc); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	return resp
}
