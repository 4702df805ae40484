//go:build unit

package product_test

import (
	"testing"

	"rental-sales-api/internal/domain/product"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindPtr(k timeunit.Kind) *timeunit.Kind { return &k }

func TestCandidateUnits(t *testing.T) {
	t.Run("precedence puts day before month before hour", func(t *testing.T) {
		p, err := builder.NewProductBuilder().
			WithUnit(timeunit.KindHour, 10.0).
			WithUnit(timeunit.KindMonth, 2000.0).
			BuildDomain()
		require.NoError(t, err)

		got := p.CandidateUnits(false)
		assert.Equal(t, []timeunit.Kind{timeunit.KindDay, timeunit.KindMonth, timeunit.KindHour}, got)
	})

	t.Run("interval offered only under an interval price list", func(t *testing.T) {
		p, err := builder.NewProductBuilder().
			WithUnit(timeunit.KindInterval, 50.0).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []timeunit.Kind{timeunit.KindInterval}, p.CandidateUnits(true))
		assert.Equal(t, []timeunit.Kind{timeunit.KindDay}, p.CandidateUnits(false))
	})

	t.Run("interval price list without interval service falls through", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, []timeunit.Kind{timeunit.KindDay}, p.CandidateUnits(true))
	})

	t.Run("non-rentable product has no candidates", func(t *testing.T) {
		p, err := builder.NewProductBuilder().AsNotRentable().BuildDomain()
		require.NoError(t, err)

		assert.Empty(t, p.CandidateUnits(false))
	})
}

func TestResolveVariant(t *testing.T) {
	t.Run("requested unit wins", func(t *testing.T) {
		b := builder.NewProductBuilder().WithUnit(timeunit.KindMonth, 2000.0)
		p, err := b.BuildDomain()
		require.NoError(t, err)

		got, err := p.ResolveVariant(kindPtr(timeunit.KindMonth), false)
		require.NoError(t, err)
		assert.Equal(t, timeunit.KindMonth, got.Unit)
		assert.Equal(t, b.VariantID(timeunit.KindMonth), got.VariantID)
	})

	t.Run("no requested unit picks by precedence", func(t *testing.T) {
		b := builder.NewProductBuilder().WithUnit(timeunit.KindHour, 10.0)
		p, err := b.BuildDomain()
		require.NoError(t, err)

		got, err := p.ResolveVariant(nil, false)
		require.NoError(t, err)
		assert.Equal(t, timeunit.KindDay, got.Unit)
		assert.Equal(t, b.VariantID(timeunit.KindDay), got.VariantID)
	})

	t.Run("requested unit the product cannot bill by", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = p.ResolveVariant(kindPtr(timeunit.KindHour), false)
		require.ErrorIs(t, err, product.ErrNoRentalCapability)
	})

	t.Run("interval requested outside an interval price list", func(t *testing.T) {
		p, err := builder.NewProductBuilder().
			WithUnit(timeunit.KindInterval, 50.0).
			BuildDomain()
		require.NoError(t, err)

		_, err = p.ResolveVariant(kindPtr(timeunit.KindInterval), false)
		require.ErrorIs(t, err, product.ErrNoRentalCapability)
	})

	t.Run("no rental capability at all", func(t *testing.T) {
		p, err := builder.NewProductBuilder().WithoutAnyUnit().BuildDomain()
		require.NoError(t, err)

		_, err = p.ResolveVariant(nil, false)
		require.ErrorIs(t, err, product.ErrNoRentalCapability)
	})
}

func TestNewRentalProduct(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*builder.ProductBuilder)
		errIs  error
	}

	runCases := func(t *testing.T, cases []testCase) {
		t.Helper()
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := builder.NewProductBuilder().With(c.mutate).BuildDomain()

				if c.errIs == nil {
					require.NotNil(t, actual)
					require.NoError(t, err)
				} else {
					require.Nil(t, actual)
					require.Error(t, err)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	}

	runCases(t, []testCase{
		{
			name:   "default product is valid",
			mutate: func(b *builder.ProductBuilder) {},
		},
		{
			name:   "empty name",
			mutate: func(b *builder.ProductBuilder) { b.Name = "" },
			errIs:  product.ErrEmptyProductName,
		},
		{
			name: "enabled granularity without a variant",
			mutate: func(b *builder.ProductBuilder) {
				b.Granularities[timeunit.KindDay] = product.Granularity{Enabled: true, ListPrice: 100.0}
			},
			errIs: product.ErrMissingRentalService,
		},
		{
			name: "negative granularity price",
			mutate: func(b *builder.ProductBuilder) {
				b.WithUnit(timeunit.KindHour, -1.0)
			},
			errIs: product.ErrNegativeListPrice,
		},
		{
			name:   "negative max interval",
			mutate: func(b *builder.ProductBuilder) { b.MaxIntervalDays = -1 },
			errIs:  product.ErrNegativeMaxInterval,
		},
	})
}
