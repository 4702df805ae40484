package timeunit

import (
	"errors"
	"time"
)

var (
	ErrUnknownUnit    = errors.New("unknown time unit")
	ErrDuplicateUnit  = errors.New("time unit already registered")
	ErrInvalidRange   = errors.New("end date is before start date")
	ErrZeroRounding   = errors.New("rounding precision must be positive")
	ErrNoDurationFunc = errors.New("date-derived unit requires a duration function")
)

// DurationFunc derives the billable number of units from a date range.
// Units without one (hour/day/month) take the count from the requester.
type DurationFunc func(start, end time.Time) float64

// TimeUnit is an immutable rental granularity definition. One instance
// per kind, resolved through the Registry at request time.
type TimeUnit struct {
	kind     Kind
	name     string
	rounding float64
	duration DurationFunc
}

func New(kind Kind, name string, rounding float64, duration DurationFunc) (TimeUnit, error) {
	if rounding <= 0 {
		return TimeUnit{}, ErrZeroRounding
	}
	if kind.DerivesFromDates() && duration == nil {
		return TimeUnit{}, ErrNoDurationFunc
	}
	return TimeUnit{
		kind:     kind,
		name:     name,
		rounding: rounding,
		duration: duration,
	}, nil
}

func (u TimeUnit) Kind() Kind        { return u.kind }
func (u TimeUnit) Name() string      { return u.name }
func (u TimeUnit) Rounding() float64 { return u.rounding }

// DerivesFromDates reports whether the unit count is computed from the
// start/end dates instead of being supplied by the requester.
func (u TimeUnit) DerivesFromDates() bool {
	return u.duration != nil
}

// QuantityBetween computes the billable unit count for a date range.
// For units whose count is requester-supplied it returns 0 and callers
// must keep the previous value.
func (u TimeUnit) QuantityBetween(start, end time.Time) (float64, error) {
	if u.duration == nil {
		return 0, nil
	}
	if end.Before(start) {
		return 0, ErrInvalidRange
	}
	return u.duration(start, end), nil
}

// IntervalDays counts calendar days inclusively: a rental from day N to
// day N is one day.
func IntervalDays(start, end time.Time) float64 {
	s := truncateToDate(start)
	e := truncateToDate(end)
	days := int(e.Sub(s).Hours()/24) + 1
	return float64(days)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
