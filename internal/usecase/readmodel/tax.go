package readmodel

import (
	"github.com/google/uuid"
)

type TaxRM struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Percent      float64   `json:"percent"`
	PriceInclude bool      `json:"price_include"`
}
