package product

import (
	"errors"

	"rental-sales-api/internal/domain/timeunit"

	"github.com/google/uuid"
)

var (
	ErrEmptyProductName     = errors.New("product name cannot be empty")
	ErrMissingRentalService = errors.New("rental granularity enabled without a rental service variant")
	ErrNoRentalCapability   = errors.New("product has no rental capability for the requested unit")
	ErrNegativeListPrice    = errors.New("list price cannot be negative")
	ErrNegativeMaxInterval  = errors.New("max rental interval cannot be negative")
)

// Granularity is a per-time-unit rental configuration of a product:
// whether the product can be rented by that unit, which rental service
// variant is invoiced for it, and at what list price per unit.
type Granularity struct {
	Enabled   bool
	VariantID *uuid.UUID
	ListPrice float64
}

// RentalProduct is the rentable product definition. The stock item
// itself is sold or rented; each enabled granularity points at the
// service variant that carries the rental price.
type RentalProduct struct {
	id              uuid.UUID
	name            string
	rentable        bool
	saleOK          bool
	granularities   map[timeunit.Kind]Granularity
	maxIntervalDays float64
	defPriceListID  *uuid.UUID
}

func NewRentalProduct(
	id uuid.UUID,
	name string,
	rentable bool,
	saleOK bool,
	granularities map[timeunit.Kind]Granularity,
	maxIntervalDays float64,
	defPriceListID *uuid.UUID,
) (*RentalProduct, error) {
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if maxIntervalDays < 0 {
		return nil, ErrNegativeMaxInterval
	}
	gs := make(map[timeunit.Kind]Granularity, len(granularities))
	for kind, g := range granularities {
		if g.Enabled && g.VariantID == nil {
			return nil, ErrMissingRentalService
		}
		if g.ListPrice < 0 {
			return nil, ErrNegativeListPrice
		}
		gs[kind] = g
	}
	return &RentalProduct{
		id:              id,
		name:            name,
		rentable:        rentable,
		saleOK:          saleOK,
		granularities:   gs,
		maxIntervalDays: maxIntervalDays,
		defPriceListID:  defPriceListID,
	}, nil
}

func (p *RentalProduct) ID() uuid.UUID                { return p.id }
func (p *RentalProduct) Name() string                 { return p.name }
func (p *RentalProduct) Rentable() bool               { return p.rentable }
func (p *RentalProduct) SaleOK() bool                 { return p.saleOK }
func (p *RentalProduct) MaxIntervalDays() float64     { return p.maxIntervalDays }
func (p *RentalProduct) DefPriceListID() *uuid.UUID   { return p.defPriceListID }

func (p *RentalProduct) SupportsUnit(kind timeunit.Kind) bool {
	g, ok := p.granularities[kind]
	return ok && g.Enabled && g.VariantID != nil
}

func (p *RentalProduct) VariantFor(kind timeunit.Kind) (uuid.UUID, error) {
	if !p.SupportsUnit(kind) {
		return uuid.Nil, ErrNoRentalCapability
	}
	return *p.granularities[kind].VariantID, nil
}

func (p *RentalProduct) ListPriceFor(kind timeunit.Kind) float64 {
	return p.granularities[kind].ListPrice
}
