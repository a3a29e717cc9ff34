package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const (
	maxNameLength      = 100
	maxSpecialtyLength = 100
)

var (
	// ErrNameRequired возвращается, если имя барбера пустое
	ErrNameRequired = errors.New("barber name is required")

	// ErrNameTooLong возвращается, если имя барбера слишком длинное
	ErrNameTooLong = errors.New("barber name is too long")

	// ErrSpecialtyTooLong возвращается, если специальность слишком длинная
	ErrSpecialtyTooLong = errors.New("barber specialty is too long")
)

// Actor пользователь, от имени которого выполняется операция
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// Request модели

// CreateBarberRequest запрос на добавление барбера
type CreateBarberRequest struct {
	Actor     Actor
	Name      string
	Specialty *string
}

// Validate проверяет и нормализует поля
func (r *CreateBarberRequest) Validate() error {
	name, err := normalizeName(r.Name)
	if err != nil {
		return err
	}
	specialty, err := normalizeSpecialty(r.Specialty)
	if err != nil {
		return err
	}
	r.Name = name
	r.Specialty = specialty
	return nil
}

// ToDomain создает активного барбера
func (r *CreateBarberRequest) ToDomain() *domain.Barber {
	return &domain.Barber{
		Name:      r.Name,
		Specialty: r.Specialty,
		Active:    true,
	}
}

// UpdateBarberRequest запрос на изменение барбера
// Отсутствующие поля не изменяются, пустая специальность ее удаляет
type UpdateBarberRequest struct {
	Actor     Actor
	Name      *string
	Specialty *string
	Active    *bool
}

// Apply применяет изменения к копии барбера
func (r *UpdateBarberRequest) Apply(current *domain.Barber) (*domain.Barber, error) {
	updated := *current

	if r.Name != nil {
		name, err := normalizeName(*r.Name)
		if err != nil {
			return nil, err
		}
		updated.Name = name
	}
	if r.Specialty != nil {
		specialty, err := normalizeSpecialty(r.Specialty)
		if err != nil {
			return nil, err
		}
		updated.Specialty = specialty
	}
	if r.Active != nil {
		updated.Active = *r.Active
	}

	return &updated, nil
}

// Response модели

// BarberResponse барбер для API
type BarberResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Specialty *string   `json:"specialty,omitempty"`
	Active    bool      `json:"active"`
}

// FromDomainBarber конвертирует барбера в response
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	return &BarberResponse{
		ID:        b.ID,
		Name:      b.Name,
		Specialty: b.Specialty,
		Active:    b.Active,
	}
}

// FromDomainBarberList конвертирует список барберов
func FromDomainBarberList(barbers []*domain.Barber) []*BarberResponse {
	resp := make([]*BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		resp = append(resp, FromDomainBarber(b))
	}
	return resp
}

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

func normalizeSpecialty(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	specialty := strings.TrimSpace(*raw)
	if specialty == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(specialty) > maxSpecialtyLength {
		return nil, ErrSpecialtyTooLong
	}
	return &specialty, nil
}
