package rentalline

import (
	"time"

	"rental-sales-api/internal/domain/timeunit"
)

// ComputeTimeUnits derives the number of time units for a date range.
// Date-derived units (interval) count days inclusively; for the others
// the requester-supplied count is authoritative. A missing date leaves
// the current value untouched.
func ComputeTimeUnits(unit timeunit.TimeUnit, start, end *time.Time, current float64) (float64, error) {
	if start == nil || end == nil {
		return current, nil
	}
	if !unit.DerivesFromDates() {
		return current, nil
	}
	return unit.QuantityBetween(*start, *end)
}

// BilledQuantity is the quantity invoiced on the order line. Interval
// rentals bill the rental quantity itself (the elapsed days live in the
// price, not the quantity); discrete units bill count times duration.
func BilledQuantity(unit timeunit.TimeUnit, rentalQty, numberOfTimeUnits float64) float64 {
	if unit.Kind() == timeunit.KindInterval {
		return rentalQty
	}
	return rentalQty * numberOfTimeUnits
}
