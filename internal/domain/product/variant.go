package product

import (
	"errors"

	"rental-sales-api/internal/domain/timeunit"

	"github.com/google/uuid"
)

var ErrVariantWithoutRentedProduct = errors.New("rental service variant has no rented product link")

// Variant is a concrete rental service SKU tied to one granularity of a
// rentable product. It is what appears on the order line; the rented
// stock item stays in the warehouse.
type Variant struct {
	id              uuid.UUID
	name            string
	unit            timeunit.Kind
	productID       uuid.UUID  // governing rentable product
	rentedProductID *uuid.UUID // stock item handed to the customer
	listPrice       float64
}

func NewVariant(
	id uuid.UUID,
	name string,
	unit timeunit.Kind,
	productID uuid.UUID,
	rentedProductID *uuid.UUID,
	listPrice float64,
) (*Variant, error) {
	if listPrice < 0 {
		return nil, ErrNegativeListPrice
	}
	return &Variant{
		id:              id,
		name:            name,
		unit:            unit,
		productID:       productID,
		rentedProductID: rentedProductID,
		listPrice:       listPrice,
	}, nil
}

func (v *Variant) ID() uuid.UUID                { return v.id }
func (v *Variant) Name() string                 { return v.name }
func (v *Variant) Unit() timeunit.Kind          { return v.unit }
func (v *Variant) ProductID() uuid.UUID         { return v.productID }
func (v *Variant) RentedProductID() *uuid.UUID  { return v.rentedProductID }
func (v *Variant) ListPrice() float64           { return v.listPrice }

// IsRentalService reports whether the variant is backed by a stock item
// that leaves the warehouse when rented.
func (v *Variant) IsRentalService() bool {
	return v.rentedProductID != nil
}
