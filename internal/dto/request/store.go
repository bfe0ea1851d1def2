package request

type LocationRequest struct {
	City      *string  `json:"city,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type ContactRequest struct {
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
}

// CreateStoreRequest carries everything a client may set on a new store.
// Flags are pointers so that an omitted flag falls back to its default
// (active yes, verified no, delivery no) instead of JSON's false.
type CreateStoreRequest struct {
	Name         string           `json:"name" validate:"required"`
	Description  *string          `json:"description,omitempty"`
	Thumbnail    *string          `json:"thumbnail,omitempty"`
	Images       []string         `json:"images,omitempty"`
	Location     *LocationRequest `json:"location,omitempty"`
	Contact      *ContactRequest  `json:"contact,omitempty"`
	OpeningHours *string          `json:"opening_hours,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
	IsVerified   *bool            `json:"is_verified,omitempty"`
	IsDelivery   *bool            `json:"is_delivery,omitempty"`
	PricePerKg   *float64         `json:"price_per_kg,omitempty"`
}
