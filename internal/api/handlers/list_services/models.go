package list_services

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ServiceResponse HTTP response model
type ServiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category *string   `json:"category,omitempty"`
	Price    float64   `json:"price"`
}

// FromDomainProducts конвертирует каталог услуг в HTTP response
func FromDomainProducts(products []*domain.Product) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, ServiceResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
		})
	}
	return resp
}
