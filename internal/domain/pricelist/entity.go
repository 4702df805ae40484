package pricelist

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyPriceListName  = errors.New("price list name cannot be empty")
	ErrInvalidPolicy       = errors.New("invalid discount policy")
	ErrEmptyCurrency       = errors.New("price list currency cannot be empty")
	ErrCurrencyMismatch    = errors.New("currency does not match price list")
	ErrNegativeRulePrice   = errors.New("rule price cannot be negative")
	ErrInvalidRuleDiscount = errors.New("rule discount must be between 0 and 100")
)

// DiscountPolicy controls whether rule prices already include the
// discount or whether the undiscounted base price must stay visible.
type DiscountPolicy string

const (
	// PolicyWithDiscount shows the final discounted price as-is.
	PolicyWithDiscount DiscountPolicy = "with_discount"
	// PolicyWithoutDiscount never displays less than the undiscounted
	// base price when no rule applies.
	PolicyWithoutDiscount DiscountPolicy = "without_discount"
)

func (p DiscountPolicy) IsValid() bool {
	return p == PolicyWithDiscount || p == PolicyWithoutDiscount
}

func NewDiscountPolicy(s string) (DiscountPolicy, error) {
	p := DiscountPolicy(s)
	if !p.IsValid() {
		return "", ErrInvalidPolicy
	}
	return p, nil
}

// PriceList aggregate. Rules belong to it and are looked up, never
// mutated, by the pricing engine.
type PriceList struct {
	id              uuid.UUID
	name            string
	currency        string
	intervalPricing bool
	discountPolicy  DiscountPolicy
}

func NewPriceList(
	id uuid.UUID,
	name string,
	currency string,
	intervalPricing bool,
	discountPolicy DiscountPolicy,
) (*PriceList, error) {
	if name == "" {
		return nil, ErrEmptyPriceListName
	}
	if currency == "" {
		return nil, ErrEmptyCurrency
	}
	if !discountPolicy.IsValid() {
		return nil, ErrInvalidPolicy
	}
	return &PriceList{
		id:              id,
		name:            name,
		currency:        currency,
		intervalPricing: intervalPricing,
		discountPolicy:  discountPolicy,
	}, nil
}

func (pl *PriceList) ID() uuid.UUID                  { return pl.id }
func (pl *PriceList) Name() string                   { return pl.name }
func (pl *PriceList) Currency() string               { return pl.currency }
func (pl *PriceList) IsIntervalPricing() bool        { return pl.intervalPricing }
func (pl *PriceList) DiscountPolicy() DiscountPolicy { return pl.discountPolicy }
