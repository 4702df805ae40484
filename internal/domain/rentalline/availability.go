package rentalline

import (
	"fmt"
	"math"
)

// AvailabilitySnapshot is a transient stock read at the rental return
// location, valid only for the instant of the check.
type AvailabilitySnapshot struct {
	OnHand   float64
	Outgoing float64
}

func (s AvailabilitySnapshot) Available() float64 {
	return s.OnHand - s.Outgoing
}

// StockWarning is advisory: the quote proceeds, the caller decides what
// to show.
type StockWarning struct {
	RequestedQty float64
	AvailableQty float64
	UnitName     string
	LocationName string
}

func (w StockWarning) Message() string {
	return fmt.Sprintf(
		"You want to rent %.2f %s but you only have %.2f %s currently available "+
			"on the stock location %q! Make sure that you get some units back in the "+
			"meantime or re-supply the stock location %q.",
		w.RequestedQty, w.UnitName, w.AvailableQty, w.UnitName,
		w.LocationName, w.LocationName,
	)
}

// CheckAvailability compares the requested rental quantity against the
// snapshot using the unit's rounding precision. Equal-or-more on hand
// produces no warning; only a strictly smaller available quantity does.
func CheckAvailability(snap AvailabilitySnapshot, requestedQty, rounding float64, unitName, locationName string) *StockWarning {
	available := snap.Available()
	if floatCompare(available, requestedQty, rounding) >= 0 {
		return nil
	}
	return &StockWarning{
		RequestedQty: requestedQty,
		AvailableQty: available,
		UnitName:     unitName,
		LocationName: locationName,
	}
}

// floatCompare compares two quantities at the given rounding precision,
// returning -1, 0 or 1. Quantities are floored to the precision before
// comparing: 4.999 vs 5 at 0.01 is a real shortfall, exactly 5 vs 5 is
// not, and sub-precision float noise never flips the result.
func floatCompare(a, b, precision float64) int {
	if precision <= 0 {
		precision = 0.01
	}
	ra := floorTo(a, precision)
	rb := floorTo(b, precision)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

func floorTo(v, precision float64) float64 {
	// the epsilon absorbs binary representation error in v/precision
	return math.Floor(v/precision+1e-9) * precision
}
