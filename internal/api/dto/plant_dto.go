package dto

import (
	"time"

	"github.com/rumman321/e-Commerce-server/internal/domain"
)

// CreatePlantRequest payload for new catalog items.
type CreatePlantRequest struct {
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	SellerName  string  `json:"sellerName,omitempty"`
}

// AdjustQuantityRequest payload for stock adjustment. Status selects the
// direction; anything other than "increase" decreases.
type AdjustQuantityRequest struct {
	QuantityToUpdate int    `json:"quantityToUpdate"`
	Status           string `json:"status"`
}

// SellerResponse is the embedded seller projection.
type SellerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PlantResponse is the public projection of a catalog item.
type PlantResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Image       string         `json:"image,omitempty"`
	Category    string         `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	Quantity    int            `json:"quantity"`
	Seller      SellerResponse `json:"seller"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// NewPlantResponse projects a domain plant.
func NewPlantResponse(plant *domain.Plant) PlantResponse {
	return PlantResponse{
		ID:          plant.ID,
		Name:        plant.Name,
		Image:       plant.Image,
		Category:    plant.Category,
		Description: plant.Description,
		Price:       plant.Price,
		Quantity:    plant.Quantity,
		Seller: SellerResponse{
			Name:  plant.SellerName,
			Email: plant.SellerEmail,
		},
		CreatedAt: plant.CreatedAt,
	}
}
