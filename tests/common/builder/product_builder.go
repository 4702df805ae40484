//go:build unit || e2e

package builder

import (
	"rental-sales-api/internal/domain/product"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// ProductBuilder builds a rentable product with a day rental service by
// default. Granularities are toggled per test.
type ProductBuilder struct {
	ID              uuid.UUID
	Name            string
	Rentable        bool
	SaleOK          bool
	ListPrice       float64
	Granularities   map[timeunit.Kind]product.Granularity
	MaxIntervalDays float64
	DefPriceListID  *uuid.UUID
}

func NewProductBuilder() *ProductBuilder {
	dayVariant := uuid.New()
	return &ProductBuilder{
		ID:        uuid.New(),
		Name:      "Scaffolding Tower",
		Rentable:  true,
		SaleOK:    true,
		ListPrice: 1500.0,
		Granularities: map[timeunit.Kind]product.Granularity{
			timeunit.KindDay: {Enabled: true, VariantID: &dayVariant, ListPrice: 100.0},
		},
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) BuildDomain() (*product.RentalProduct, error) {
	return product.NewRentalProduct(
		p.ID, p.Name, p.Rentable, p.SaleOK, p.Granularities, p.MaxIntervalDays, p.DefPriceListID,
	)
}

func (p *ProductBuilder) BuildReadModel() *readmodel.ProductRM {
	rm := &readmodel.ProductRM{
		ID:              p.ID,
		Name:            p.Name,
		Rentable:        p.Rentable,
		SaleOK:          p.SaleOK,
		ListPrice:       p.ListPrice,
		MaxIntervalDays: p.MaxIntervalDays,
		DefPriceListID:  p.DefPriceListID,
	}
	if g, ok := p.Granularities[timeunit.KindHour]; ok {
		rm.RentableByHour = g.Enabled
		rm.HourVariantID = g.VariantID
		rm.PricePerHour = g.ListPrice
	}
	if g, ok := p.Granularities[timeunit.KindDay]; ok {
		rm.RentableByDay = g.Enabled
		rm.DayVariantID = g.VariantID
		rm.PricePerDay = g.ListPrice
	}
	if g, ok := p.Granularities[timeunit.KindMonth]; ok {
		rm.RentableByMonth = g.Enabled
		rm.MonthVariantID = g.VariantID
		rm.PricePerMonth = g.ListPrice
	}
	if g, ok := p.Granularities[timeunit.KindInterval]; ok {
		rm.RentableByInt = g.Enabled
		rm.IntVariantID = g.VariantID
		rm.PricePerInt = g.ListPrice
	}
	return rm
}

// Fluent builder methods
func (p *ProductBuilder) WithUnit(kind timeunit.Kind, price float64) *ProductBuilder {
	variantID := uuid.New()
	p.Granularities[kind] = product.Granularity{Enabled: true, VariantID: &variantID, ListPrice: price}
	return p
}

func (p *ProductBuilder) WithoutUnit(kind timeunit.Kind) *ProductBuilder {
	delete(p.Granularities, kind)
	return p
}

func (p *ProductBuilder) WithoutAnyUnit() *ProductBuilder {
	p.Granularities = map[timeunit.Kind]product.Granularity{}
	return p
}

func (p *ProductBuilder) WithMaxIntervalDays(days float64) *ProductBuilder {
	p.MaxIntervalDays = days
	return p
}

func (p *ProductBuilder) WithDefaultPriceList(id uuid.UUID) *ProductBuilder {
	p.DefPriceListID = &id
	return p
}

func (p *ProductBuilder) AsNotRentable() *ProductBuilder {
	p.Rentable = false
	return p
}

func (p *ProductBuilder) VariantID(kind timeunit.Kind) uuid.UUID {
	g, ok := p.Granularities[kind]
	if !ok || g.VariantID == nil {
		return uuid.Nil
	}
	return *g.VariantID
}

func (p *ProductBuilder) BuildVariantReadModel(kind timeunit.Kind) *readmodel.VariantRM {
	g := p.Granularities[kind]
	rented := p.ID
	return &readmodel.VariantRM{
		ID:              *g.VariantID,
		Name:            p.Name + " (" + kind.String() + ")",
		Unit:            kind.String(),
		ProductID:       p.ID,
		RentedProductID: &rented,
		ListPrice:       g.ListPrice,
	}
}
