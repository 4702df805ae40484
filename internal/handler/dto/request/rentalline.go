package request

import (
	"time"

	"rental-sales-api/internal/domain/rentalline"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// QuoteRequest carries the full order-line state plus the field whose
// edit triggered the recompute. The server derives everything else.
type QuoteRequest struct {
	ProductID         uuid.UUID   `json:"product_id" binding:"required"`
	Kind              string      `json:"kind" binding:"required,oneof=sale new_rental rental_extension sell_rental"`
	Unit              *string     `json:"unit,omitempty" binding:"omitempty,oneof=hour day month interval"`
	RentalQty         float64     `json:"rental_qty"`
	NumberOfTimeUnits float64     `json:"number_of_time_units"`
	StartDate         *time.Time  `json:"start_date,omitempty"`
	EndDate           *time.Time  `json:"end_date,omitempty"`
	Currency          string      `json:"currency,omitempty"`
	PriceListID       *uuid.UUID  `json:"pricelist_id,omitempty"`
	PartnerID         *uuid.UUID  `json:"partner_id,omitempty"`
	WarehouseID       *uuid.UUID  `json:"warehouse_id,omitempty"`
	OriginalRentalQty *float64    `json:"original_rental_qty,omitempty"`
	LineTaxIDs        []uuid.UUID `json:"line_tax_ids,omitempty"`
	ChangedField      string      `json:"changed_field,omitempty"`
}

func (r *QuoteRequest) ToDomain() (rentalline.Request, commands.TriggerField, error) {
	var unit *timeunit.Kind
	if r.Unit != nil {
		k, err := timeunit.NewKind(*r.Unit)
		if err != nil {
			return rentalline.Request{}, "", err
		}
		unit = &k
	}

	req := rentalline.Request{
		ProductID:         r.ProductID,
		Kind:              rentalline.LineKind(r.Kind),
		Unit:              unit,
		RentalQty:         r.RentalQty,
		NumberOfTimeUnits: r.NumberOfTimeUnits,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Currency:          r.Currency,
		PriceListID:       r.PriceListID,
		PartnerID:         r.PartnerID,
		WarehouseID:       r.WarehouseID,
		OriginalRentalQty: r.OriginalRentalQty,
		LineTaxIDs:        r.LineTaxIDs,
	}
	return req, commands.TriggerField(r.ChangedField), nil
}
