package readmodel

import (
	"github.com/google/uuid"
)

// StockLevelRM is a point-in-time stock read for one product at one
// location. Never cached.
type StockLevelRM struct {
	ProductID  uuid.UUID `json:"product_id"`
	LocationID uuid.UUID `json:"location_id"`
	OnHand     float64   `json:"on_hand"`
	Outgoing   float64   `json:"outgoing"`
}

type LocationRM struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	WarehouseID *uuid.UUID `json:"warehouse_id,omitempty"`
	IsRentalIn  bool       `json:"is_rental_in"`
}
