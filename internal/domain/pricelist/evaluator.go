package pricelist

import (
	"time"

	"rental-sales-api/internal/domain/timeunit"

	"github.com/google/uuid"
)

// LookupKey identifies one price evaluation: which item, how many time
// units, in which unit, on which order date, in which currency.
type LookupKey struct {
	VariantID uuid.UUID
	Unit      timeunit.Kind
	Quantity  float64
	Date      time.Time
	Currency  string
}

// Evaluation is the outcome of one rule-set evaluation.
type Evaluation struct {
	UnitPrice float64
	RuleID    *uuid.UUID // nil when the list price was used
}

// ComputePrice evaluates the rule set for the key and returns the rule
// price, honoring the discount policy: under PolicyWithoutDiscount the
// result never understates the undiscounted base price.
func (pl *PriceList) ComputePrice(rules []Rule, key LookupKey, listPrice float64) (Evaluation, error) {
	if key.Currency != "" && key.Currency != pl.currency {
		return Evaluation{}, ErrCurrencyMismatch
	}

	eval := pl.evaluateRules(rules, key, listPrice)

	if pl.discountPolicy == PolicyWithoutDiscount {
		base, err := pl.ComputeBasePrice(key, listPrice)
		if err != nil {
			return Evaluation{}, err
		}
		if base > eval.UnitPrice {
			eval.UnitPrice = base
		}
	}
	return eval, nil
}

// ComputeBasePrice returns the pre-discount baseline for the key, i.e.
// the item list price before any rule applies.
func (pl *PriceList) ComputeBasePrice(key LookupKey, listPrice float64) (float64, error) {
	if key.Currency != "" && key.Currency != pl.currency {
		return 0, ErrCurrencyMismatch
	}
	return listPrice, nil
}

func (pl *PriceList) evaluateRules(rules []Rule, key LookupKey, listPrice float64) Evaluation {
	var best *Rule
	for i := range rules {
		r := rules[i]
		if r.priceListID != pl.id || !r.Matches(key) {
			continue
		}
		if best == nil || r.beats(*best) {
			best = &rules[i]
		}
	}
	if best == nil {
		return Evaluation{UnitPrice: listPrice}
	}
	id := best.id
	return Evaluation{UnitPrice: best.Price(listPrice), RuleID: &id}
}
