//go:build unit || e2e

package builder

import (
	"time"

	"rental-sales-api/internal/domain/pricelist"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PriceListBuilder struct {
	ID              uuid.UUID
	Name            string
	Currency        string
	IntervalPricing bool
	DiscountPolicy  string
}

func NewPriceListBuilder() *PriceListBuilder {
	return &PriceListBuilder{
		ID:             uuid.New(),
		Name:           "Public Pricelist",
		Currency:       "EUR",
		DiscountPolicy: "with_discount",
	}
}

func (b *PriceListBuilder) With(mutate func(*PriceListBuilder)) *PriceListBuilder {
	mutate(b)
	return b
}

func (b *PriceListBuilder) BuildDomain() (*pricelist.PriceList, error) {
	policy, err := pricelist.NewDiscountPolicy(b.DiscountPolicy)
	if err != nil {
		return nil, err
	}
	return pricelist.NewPriceList(b.ID, b.Name, b.Currency, b.IntervalPricing, policy)
}

func (b *PriceListBuilder) BuildReadModel() *readmodel.PriceListRM {
	return &readmodel.PriceListRM{
		ID:              b.ID,
		Name:            b.Name,
		Currency:        b.Currency,
		IntervalPricing: b.IntervalPricing,
		DiscountPolicy:  b.DiscountPolicy,
	}
}

// Fluent builder methods
func (b *PriceListBuilder) WithCurrency(currency string) *PriceListBuilder {
	b.Currency = currency
	return b
}

func (b *PriceListBuilder) AsIntervalPricing() *PriceListBuilder {
	b.IntervalPricing = true
	return b
}

func (b *PriceListBuilder) WithoutDiscountPolicy() *PriceListBuilder {
	b.DiscountPolicy = "without_discount"
	return b
}

type RuleBuilder struct {
	ID          uuid.UUID
	PriceListID uuid.UUID
	VariantID   *uuid.UUID
	Unit        *timeunit.Kind
	MinQuantity float64
	DateStart   *time.Time
	DateEnd     *time.Time
	Priority    int
	ComputeMode string
	FixedPrice  float64
	PercentOff  float64
}

func NewRuleBuilder(priceListID uuid.UUID) *RuleBuilder {
	return &RuleBuilder{
		ID:          uuid.New(),
		PriceListID: priceListID,
		Priority:    10,
		ComputeMode: "fixed",
		FixedPrice:  80.0,
	}
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) BuildDomain() (pricelist.Rule, error) {
	return pricelist.NewRule(
		b.ID, b.PriceListID, b.VariantID, b.Unit, b.MinQuantity,
		b.DateStart, b.DateEnd, b.Priority,
		pricelist.ComputeMode(b.ComputeMode), b.FixedPrice, b.PercentOff,
	)
}

func (b *RuleBuilder) BuildReadModel() *readmodel.PriceRuleRM {
	var unit *string
	if b.Unit != nil {
		s := b.Unit.String()
		unit = &s
	}
	return &readmodel.PriceRuleRM{
		ID:          b.ID,
		PriceListID: b.PriceListID,
		VariantID:   b.VariantID,
		Unit:        unit,
		MinQuantity: b.MinQuantity,
		DateStart:   b.DateStart,
		DateEnd:     b.DateEnd,
		Priority:    b.Priority,
		ComputeMode: b.ComputeMode,
		FixedPrice:  b.FixedPrice,
		PercentOff:  b.PercentOff,
	}
}

// Fluent builder methods
func (b *RuleBuilder) ForVariant(id uuid.UUID) *RuleBuilder {
	b.VariantID = &id
	return b
}

func (b *RuleBuilder) ForUnit(kind timeunit.Kind) *RuleBuilder {
	b.Unit = &kind
	return b
}

func (b *RuleBuilder) WithMinQuantity(q float64) *RuleBuilder {
	b.MinQuantity = q
	return b
}

func (b *RuleBuilder) WithFixedPrice(price float64) *RuleBuilder {
	b.ComputeMode = "fixed"
	b.FixedPrice = price
	return b
}

func (b *RuleBuilder) WithDiscount(percent float64) *RuleBuilder {
	b.ComputeMode = "discount"
	b.PercentOff = percent
	return b
}

func (b *RuleBuilder) WithPriority(p int) *RuleBuilder {
	b.Priority = p
	return b
}

func (b *RuleBuilder) ValidBetween(start, end time.Time) *RuleBuilder {
	b.DateStart = &start
	b.DateEnd = &end
	return b
}
