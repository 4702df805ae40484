package product

import (
	"rental-sales-api/internal/domain/timeunit"

	"github.com/google/uuid"
)

// ResolvedVariant is the outcome of variant resolution: the rental
// service to invoice and the time unit it bills by.
type ResolvedVariant struct {
	VariantID uuid.UUID
	Unit      timeunit.Kind
}

// unitPrecedence is the default granularity order when the requester
// has not picked one: day before month before hour. Interval never
// appears here; it is only offered under an interval price list.
var unitPrecedence = []timeunit.Kind{
	timeunit.KindDay,
	timeunit.KindMonth,
	timeunit.KindHour,
}

// CandidateUnits lists the granularities the product may currently be
// billed by. Under an interval price list the interval unit is the only
// candidate; otherwise interval is excluded even when the product
// supports it.
func (p *RentalProduct) CandidateUnits(intervalPricing bool) []timeunit.Kind {
	if !p.rentable {
		return nil
	}
	if intervalPricing {
		if p.SupportsUnit(timeunit.KindInterval) {
			return []timeunit.Kind{timeunit.KindInterval}
		}
		// interval pricelist but no interval service: fall through to
		// the discrete units so the product stays rentable
	}
	var out []timeunit.Kind
	for _, kind := range unitPrecedence {
		if p.SupportsUnit(kind) {
			out = append(out, kind)
		}
	}
	return out
}

// ResolveVariant picks the rental service variant for the requested
// unit, or by precedence when no unit is requested. ErrNoRentalCapability
// means the caller must downgrade the line to a plain sale of the base
// product.
func (p *RentalProduct) ResolveVariant(requested *timeunit.Kind, intervalPricing bool) (ResolvedVariant, error) {
	candidates := p.CandidateUnits(intervalPricing)
	if len(candidates) == 0 {
		return ResolvedVariant{}, ErrNoRentalCapability
	}

	if requested != nil {
		for _, kind := range candidates {
			if kind == *requested {
				id, err := p.VariantFor(kind)
				if err != nil {
					return ResolvedVariant{}, err
				}
				return ResolvedVariant{VariantID: id, Unit: kind}, nil
			}
		}
		return ResolvedVariant{}, ErrNoRentalCapability
	}

	kind := candidates[0]
	id, err := p.VariantFor(kind)
	if err != nil {
		return ResolvedVariant{}, err
	}
	return ResolvedVariant{VariantID: id, Unit: kind}, nil
}
