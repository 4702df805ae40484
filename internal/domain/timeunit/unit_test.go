//go:build unit

package timeunit_test

import (
	"testing"
	"time"

	"rental-sales-api/internal/domain/timeunit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{name: "same day counts as one", start: date(2026, 1, 1), end: date(2026, 1, 1), want: 1},
		{name: "both endpoints included", start: date(2026, 1, 1), end: date(2026, 1, 10), want: 10},
		{name: "crosses month boundary", start: date(2026, 1, 30), end: date(2026, 2, 2), want: 4},
		{name: "time of day is ignored", start: date(2026, 1, 1).Add(23 * time.Hour), end: date(2026, 1, 2).Add(1 * time.Minute), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timeunit.IntervalDays(tt.start, tt.end))
		})
	}
}

func TestQuantityBetween(t *testing.T) {
	registry := timeunit.NewRegistry()

	t.Run("interval derives from dates", func(t *testing.T) {
		interval := registry.MustResolve(timeunit.KindInterval)
		got, err := interval.QuantityBetween(date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 10.0, got)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		interval := registry.MustResolve(timeunit.KindInterval)
		_, err := interval.QuantityBetween(date(2026, 1, 10), date(2026, 1, 1))
		require.ErrorIs(t, err, timeunit.ErrInvalidRange)
	})

	t.Run("discrete units never derive from dates", func(t *testing.T) {
		day := registry.MustResolve(timeunit.KindDay)
		assert.False(t, day.DerivesFromDates())
		got, err := day.QuantityBetween(date(2026, 1, 1), date(2026, 1, 10))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})
}

func TestNew(t *testing.T) {
	t.Run("zero rounding is rejected", func(t *testing.T) {
		_, err := timeunit.New(timeunit.KindDay, "Day(s)", 0, nil)
		require.ErrorIs(t, err, timeunit.ErrZeroRounding)
	})

	t.Run("date-derived kind requires a duration function", func(t *testing.T) {
		_, err := timeunit.New(timeunit.KindInterval, "Interval", 0.01, nil)
		require.ErrorIs(t, err, timeunit.ErrNoDurationFunc)
	})
}

func TestRegistry(t *testing.T) {
	t.Run("built-in kinds resolve", func(t *testing.T) {
		registry := timeunit.NewRegistry()
		for _, kind := range []timeunit.Kind{timeunit.KindHour, timeunit.KindDay, timeunit.KindMonth, timeunit.KindInterval} {
			u, err := registry.Resolve(kind)
			require.NoError(t, err)
			assert.Equal(t, kind, u.Kind())
			assert.Equal(t, 0.01, u.Rounding())
		}
	})

	t.Run("unknown kind fails", func(t *testing.T) {
		registry := timeunit.NewRegistry()
		_, err := registry.Resolve(timeunit.Kind("week"))
		require.ErrorIs(t, err, timeunit.ErrUnknownUnit)
	})

	t.Run("custom kind can be registered once", func(t *testing.T) {
		registry := timeunit.NewRegistry()
		week, err := timeunit.New(timeunit.Kind("week"), "Week(s)", 0.01, nil)
		require.NoError(t, err)

		require.NoError(t, registry.Register(week))
		require.ErrorIs(t, registry.Register(week), timeunit.ErrDuplicateUnit)

		got, err := registry.Resolve(timeunit.Kind("week"))
		require.NoError(t, err)
		assert.Equal(t, "Week(s)", got.Name())
	})
}

func TestNewKind(t *testing.T) {
	t.Run("valid kinds", func(t *testing.T) {
		for _, s := range []string{"hour", "day", "month", "interval"} {
			k, err := timeunit.NewKind(s)
			require.NoError(t, err)
			assert.Equal(t, s, k.String())
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := timeunit.NewKind("fortnight")
		require.ErrorIs(t, err, timeunit.ErrUnknownUnit)
	})
}
