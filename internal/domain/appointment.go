package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment represents a booking of a barber for a service
type Appointment struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	BarberID        uuid.UUID
	Service         string
	StartAt         time.Time
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	// Denormalized for listings
	BarberName   *string
	CustomerName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies the barber's time
func (a *Appointment) IsBlocking() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.IsBlocking()
}

// CanBeEdited returns true if date, barber or service can still be changed
func (a *Appointment) CanBeEdited() bool {
	return a.IsBlocking()
}

// CanBeCompleted returns true if the appointment can be marked as completed
func (a *Appointment) CanBeCompleted() bool {
	return a.IsBlocking()
}

// Duration returns the appointment length, falling back to the default slot duration.
// Engine.ResolveDurations applies the configured default instead
func (a *Appointment) Duration() time.Duration {
	minutes := a.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultSlotDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// EndAt returns the exclusive end of the appointment
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(a.Duration())
}

// AppointmentRequest is a prospective appointment being validated
// ExcludeID lets an edit-in-place ignore the appointment's own prior occupancy
type AppointmentRequest struct {
	BarberID        uuid.UUID
	Service         string
	StartAt         time.Time
	DurationMinutes int
	ExcludeID       *uuid.UUID
}

// AppointmentsFilter фильтр для списка записей
type AppointmentsFilter struct {
	CustomerID      *uuid.UUID         // Только записи клиента (для не-админов всегда задан)
	BarberID        *uuid.UUID         // Фильтр по барберу
	From            *time.Time         // Начало периода по start_at (включительно)
	To              *time.Time         // Конец периода по start_at (не включительно)
	Status          *AppointmentStatus // Фильтр по статусу
	IncludeInactive bool               // Включать завершённые и отменённые
}

// ParseAppointmentStatus validates a status string
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}
