package pricelist

import (
	"time"

	"rental-sales-api/internal/domain/timeunit"

	"github.com/google/uuid"
)

// ComputeMode is how a matching rule produces a price.
type ComputeMode string

const (
	// ComputeFixed sets the unit price directly.
	ComputeFixed ComputeMode = "fixed"
	// ComputeDiscount applies a percentage discount to the list price.
	ComputeDiscount ComputeMode = "discount"
)

// Rule is one prioritized pricing directive of a price list. Rules with
// a variant scope beat generic ones; among equals the highest
// min-quantity breakpoint not exceeding the requested quantity wins,
// then the lowest priority number.
type Rule struct {
	id          uuid.UUID
	priceListID uuid.UUID
	variantID   *uuid.UUID     // nil: applies to every item
	unit        *timeunit.Kind // nil: applies to every unit
	minQuantity float64
	dateStart   *time.Time
	dateEnd     *time.Time
	priority    int
	mode        ComputeMode
	fixedPrice  float64
	percentOff  float64
}

func NewRule(
	id uuid.UUID,
	priceListID uuid.UUID,
	variantID *uuid.UUID,
	unit *timeunit.Kind,
	minQuantity float64,
	dateStart, dateEnd *time.Time,
	priority int,
	mode ComputeMode,
	fixedPrice float64,
	percentOff float64,
) (Rule, error) {
	if mode == ComputeFixed && fixedPrice < 0 {
		return Rule{}, ErrNegativeRulePrice
	}
	if mode == ComputeDiscount && (percentOff < 0 || percentOff > 100) {
		return Rule{}, ErrInvalidRuleDiscount
	}
	return Rule{
		id:          id,
		priceListID: priceListID,
		variantID:   variantID,
		unit:        unit,
		minQuantity: minQuantity,
		dateStart:   dateStart,
		dateEnd:     dateEnd,
		priority:    priority,
		mode:        mode,
		fixedPrice:  fixedPrice,
		percentOff:  percentOff,
	}, nil
}

func (r Rule) ID() uuid.UUID        { return r.id }
func (r Rule) PriceListID() uuid.UUID { return r.priceListID }
func (r Rule) MinQuantity() float64 { return r.minQuantity }
func (r Rule) Priority() int        { return r.priority }
func (r Rule) Mode() ComputeMode    { return r.mode }

// Matches reports whether the rule applies to the lookup key.
func (r Rule) Matches(key LookupKey) bool {
	if r.variantID != nil && *r.variantID != key.VariantID {
		return false
	}
	if r.unit != nil && *r.unit != key.Unit {
		return false
	}
	if key.Quantity < r.minQuantity {
		return false
	}
	if r.dateStart != nil && key.Date.Before(*r.dateStart) {
		return false
	}
	if r.dateEnd != nil && key.Date.After(*r.dateEnd) {
		return false
	}
	return true
}

// beats implements the tie-break between two matching rules.
func (r Rule) beats(other Rule) bool {
	rScoped, oScoped := r.variantID != nil, other.variantID != nil
	if rScoped != oScoped {
		return rScoped
	}
	if r.minQuantity != other.minQuantity {
		return r.minQuantity > other.minQuantity
	}
	return r.priority < other.priority
}

// Price computes the rule price from the item list price.
func (r Rule) Price(listPrice float64) float64 {
	switch r.mode {
	case ComputeFixed:
		return r.fixedPrice
	case ComputeDiscount:
		return listPrice * (100.0 - r.percentOff) / 100.0
	default:
		return listPrice
	}
}
