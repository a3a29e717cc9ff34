package domain

import (
	"time"

	"github.com/google/uuid"
)

// Barber represents a member of the shop roster
type Barber struct {
	ID        uuid.UUID
	Name      string
	Specialty *string
	Active    bool
	CreatedAt time.Time
}

// Profile holds the contact data of a customer
type Profile struct {
	ID       uuid.UUID
	FullName string
	Email    string
}

// HasEmail returns true if notifications can be delivered to the profile
func (p *Profile) HasEmail() bool {
	return p != nil && p.Email != ""
}
