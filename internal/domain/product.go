package domain

import "github.com/google/uuid"

// Product is an entry of the shop catalog. Services are what customers book
type Product struct {
	ID       uuid.UUID
	Name     string
	Category *string
	Price    float64
}
