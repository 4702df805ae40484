package rentalline

import (
	"errors"
	"time"

	"rental-sales-api/internal/domain/timeunit"

	"github.com/google/uuid"
)

var (
	ErrMissingExtensionSource = errors.New("rental extension requires the rental to extend")
	ErrExtensionQtyMismatch   = errors.New("extension quantity differs from the original rental quantity")
	ErrSellRentalQtyMismatch  = errors.New("sale quantity differs from the rented quantity")
	ErrMissingRentedProduct   = errors.New("rental line requires a rental service with a rented product")
	ErrNegativeQuantity       = errors.New("rental quantity cannot be negative")
)

// LineKind distinguishes the rental flavors of an order line.
type LineKind string

const (
	// KindSale is a plain, non-rental sale of the base product.
	KindSale LineKind = "sale"
	// KindNewRental starts a new rental.
	KindNewRental LineKind = "new_rental"
	// KindExtension extends a running rental and must keep its quantity.
	KindExtension LineKind = "rental_extension"
	// KindSellRental sells a unit that is currently rented out.
	KindSellRental LineKind = "sell_rental"
)

// Request is one ephemeral pricing request, synthesized per order-line
// edit and discarded once the derived fields are written back. It never
// carries identity across edits.
type Request struct {
	ProductID         uuid.UUID
	Kind              LineKind
	Unit              *timeunit.Kind
	RentalQty         float64
	NumberOfTimeUnits float64
	StartDate         *time.Time
	EndDate           *time.Time
	Currency          string
	PriceListID       *uuid.UUID
	PartnerID         *uuid.UUID
	WarehouseID       *uuid.UUID
	// LineTaxIDs overrides the product taxes on this line; empty keeps
	// the product taxes.
	LineTaxIDs []uuid.UUID
	// OriginalRentalQty is the quantity of the rental being extended or
	// of the rented unit being sold.
	OriginalRentalQty *float64
}

// Validate enforces the hard line-level constraints. Failures abort the
// whole recompute for this edit.
func (r Request) Validate() error {
	if r.RentalQty < 0 || r.NumberOfTimeUnits < 0 {
		return ErrNegativeQuantity
	}
	switch r.Kind {
	case KindExtension:
		if r.OriginalRentalQty == nil {
			return ErrMissingExtensionSource
		}
		if *r.OriginalRentalQty != r.RentalQty {
			return ErrExtensionQtyMismatch
		}
	case KindSellRental:
		if r.OriginalRentalQty != nil && *r.OriginalRentalQty != r.RentalQty {
			return ErrSellRentalQtyMismatch
		}
	}
	return nil
}

// IsRental reports whether the request is a rental flavor at all.
func (r Request) IsRental() bool {
	return r.Kind == KindNewRental || r.Kind == KindExtension
}
