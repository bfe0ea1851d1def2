package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location is the nested place block of a store; every field is optional
type Location struct {
	City      *string  `bson:"city,omitempty"`
	Address   *string  `bson:"address,omitempty"`
	Latitude  *float64 `bson:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty"`
}

// Contact is the nested reachability block of a store
type Contact struct {
	Phone   *string `bson:"phone,omitempty"`
	Email   *string `bson:"email,omitempty"`
	Website *string `bson:"website,omitempty"`
}

type Store struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  *string            `bson:"description,omitempty"`
	Thumbnail    *string            `bson:"thumbnail,omitempty"`
	Images       []string           `bson:"images,omitempty"`
	Location     *Location          `bson:"location,omitempty"`
	Contact      *Contact           `bson:"contact,omitempty"`
	OpeningHours *string            `bson:"opening_hours,omitempty"`
	IsActive     bool               `bson:"is_active"`
	IsVerified   bool               `bson:"is_verified"`
	IsDelivery   bool               `bson:"is_delivery"`
	PricePerKg   *float64           `bson:"price_per_kg,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}
