package response

import (
	"time"

	"laundry-hub/internal/data/entity"
)

type LocationResponse struct {
	City      *string  `json:"city,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type ContactResponse struct {
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
}

type StoreResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  *string           `json:"description,omitempty"`
	Thumbnail    *string           `json:"thumbnail,omitempty"`
	Images       []string          `json:"images,omitempty"`
	Location     *LocationResponse `json:"location,omitempty"`
	Contact      *ContactResponse  `json:"contact,omitempty"`
	OpeningHours *string           `json:"opening_hours,omitempty"`
	IsActive     bool              `json:"is_active"`
	IsVerified   bool              `json:"is_verified"`
	IsDelivery   bool              `json:"is_delivery"`
	PricePerKg   *float64          `json:"price_per_kg,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// StoreToResponse normalizes a stored document into the external view:
// the native _id becomes the string id field, nested location and contact
// pass through structurally unchanged.
func StoreToResponse(store *entity.Store) StoreResponse {
	resp := StoreResponse{
		ID:           store.ID.Hex(),
		Name:         store.Name,
		Description:  store.Description,
		Thumbnail:    store.Thumbnail,
		Images:       store.Images,
		OpeningHours: store.OpeningHours,
		IsActive:     store.IsActive,
		IsVerified:   store.IsVerified,
		IsDelivery:   store.IsDelivery,
		PricePerKg:   store.PricePerKg,
		CreatedAt:    store.CreatedAt,
		UpdatedAt:    store.UpdatedAt,
	}

	if store.Location != nil {
		resp.Location = &LocationResponse{
			City:      store.Location.City,
			Address:   store.Location.Address,
			Latitude:  store.Location.Latitude,
			Longitude: store.Location.Longitude,
		}
	}

	if store.Contact != nil {
		resp.Contact = &ContactResponse{
			Phone:   store.Contact.Phone,
			Email:   store.Contact.Email,
			Website: store.Contact.Website,
		}
	}

	return resp
}

// StoresToResponse converts a result set, yielding an empty slice (never
// nil) so clients always get a JSON array.
func StoresToResponse(stores []*entity.Store) []StoreResponse {
	responses := make([]StoreResponse, 0, len(stores))
	for _, store := range stores {
		responses = append(responses, StoreToResponse(store))
	}
	return responses
}
