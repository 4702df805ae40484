//go:build unit || e2e

package builder

import (
	"time"

	"rental-sales-api/internal/domain/rentalline"
	"rental-sales-api/internal/domain/timeunit"
	reqdto "rental-sales-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

type RentalLineBuilder struct {
	ProductID         uuid.UUID
	Kind              string
	Unit              *timeunit.Kind
	RentalQty         float64
	NumberOfTimeUnits float64
	StartDate         *time.Time
	EndDate           *time.Time
	Currency          string
	PriceListID       *uuid.UUID
	WarehouseID       *uuid.UUID
	OriginalRentalQty *float64
	ChangedField      string
}

func NewRentalLineBuilder() *RentalLineBuilder {
	unit := timeunit.KindDay
	return &RentalLineBuilder{
		ProductID:         uuid.New(),
		Kind:              "new_rental",
		Unit:              &unit,
		RentalQty:         1,
		NumberOfTimeUnits: 1,
		Currency:          "EUR",
		ChangedField:      "product",
	}
}

func (b *RentalLineBuilder) With(mutate func(*RentalLineBuilder)) *RentalLineBuilder {
	mutate(b)
	return b
}

func (b *RentalLineBuilder) BuildDomain() rentalline.Request {
	return rentalline.Request{
		ProductID:         b.ProductID,
		Kind:              rentalline.LineKind(b.Kind),
		Unit:              b.Unit,
		RentalQty:         b.RentalQty,
		NumberOfTimeUnits: b.NumberOfTimeUnits,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		Currency:          b.Currency,
		PriceListID:       b.PriceListID,
		WarehouseID:       b.WarehouseID,
		OriginalRentalQty: b.OriginalRentalQty,
	}
}

func (b *RentalLineBuilder) BuildQuoteDTO() reqdto.QuoteRequest {
	var unit *string
	if b.Unit != nil {
		s := b.Unit.String()
		unit = &s
	}
	return reqdto.QuoteRequest{
		ProductID:         b.ProductID,
		Kind:              b.Kind,
		Unit:              unit,
		RentalQty:         b.RentalQty,
		NumberOfTimeUnits: b.NumberOfTimeUnits,
		StartDate:         b.StartDate,
		EndDate:           b.EndDate,
		Currency:          b.Currency,
		PriceListID:       b.PriceListID,
		WarehouseID:       b.WarehouseID,
		OriginalRentalQty: b.OriginalRentalQty,
		ChangedField:      b.ChangedField,
	}
}

// Fluent builder methods
func (b *RentalLineBuilder) ForProduct(id uuid.UUID) *RentalLineBuilder {
	b.ProductID = id
	return b
}

func (b *RentalLineBuilder) WithKind(kind string) *RentalLineBuilder {
	b.Kind = kind
	return b
}

func (b *RentalLineBuilder) WithUnit(kind timeunit.Kind) *RentalLineBuilder {
	b.Unit = &kind
	return b
}

func (b *RentalLineBuilder) WithoutUnit() *RentalLineBuilder {
	b.Unit = nil
	return b
}

func (b *RentalLineBuilder) WithQty(rentalQty, numberOfTimeUnits float64) *RentalLineBuilder {
	b.RentalQty = rentalQty
	b.NumberOfTimeUnits = numberOfTimeUnits
	return b
}

func (b *RentalLineBuilder) WithDates(start, end time.Time) *RentalLineBuilder {
	b.StartDate = &start
	b.EndDate = &end
	return b
}

func (b *RentalLineBuilder) WithPriceList(id uuid.UUID) *RentalLineBuilder {
	b.PriceListID = &id
	return b
}

func (b *RentalLineBuilder) WithWarehouse(id uuid.UUID) *RentalLineBuilder {
	b.WarehouseID = &id
	return b
}

func (b *RentalLineBuilder) WithOriginalQty(qty float64) *RentalLineBuilder {
	b.OriginalRentalQty = &qty
	return b
}

func (b *RentalLineBuilder) Changed(field string) *RentalLineBuilder {
	b.ChangedField = field
	return b
}
