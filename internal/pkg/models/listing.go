package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing categories
const (
	ListingProperty = "property"
	ListingVehicle  = "vehicle"
)

// Listing represents a property or vehicle advert owned by an agent.
type Listing struct {
	ID        uuid.UUID `json:"id" db:"id"`
	AgentID   uuid.UUID `json:"agent_id" db:"agent_id"`
	Category  string    `json:"category" db:"category"`
	Title     string    `json:"title" db:"title"`
	Price     float64   `json:"price" db:"price"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// LoveStatus is the authoritative love state for one (user, listing) pair
// together with the live count for the listing.
type LoveStatus struct {
	ListingID uuid.UUID `json:"listing_id"`
	Loved     bool      `json:"loved"`
	Count     int       `json:"count"`
}
