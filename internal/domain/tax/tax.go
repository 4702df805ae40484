package tax

import (
	"math"

	"github.com/google/uuid"
)

// Tax is a percentage tax as configured on products and order lines.
type Tax struct {
	ID           uuid.UUID
	Name         string
	Percent      float64
	PriceInclude bool
}

// FixTaxIncludedPrice reconciles a price configured tax-included on the
// product with the taxes actually applied on the line. When the line
// taxes differ from the product taxes, the tax-included portion of the
// product taxes is stripped so the line taxes are not applied on top of
// an already-taxed amount. Full tax computation stays with the
// accounting layer; only the included-price fixup lives here.
func FixTaxIncludedPrice(price float64, productTaxes, lineTaxes []Tax) float64 {
	if sameTaxSet(productTaxes, lineTaxes) {
		return price
	}
	included := 0.0
	for _, t := range productTaxes {
		if t.PriceInclude {
			included += t.Percent
		}
	}
	if included == 0 {
		return price
	}
	return price / (1 + included/100)
}

// Round rounds a resolved unit price to the given number of decimals.
func Round(price float64, decimals int) float64 {
	factor := math.Pow10(decimals)
	return math.Round(price*factor) / factor
}

func sameTaxSet(a, b []Tax) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[uuid.UUID]bool, len(a))
	for _, t := range a {
		seen[t.ID] = true
	}
	for _, t := range b {
		if !seen[t.ID] {
			return false
		}
	}
	return true
}
