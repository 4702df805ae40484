package response

import (
	"rental-sales-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// QuoteResponse mirrors the derived order-line fields. The stock
// warning is advisory and never turns the quote into a failure.
type QuoteResponse struct {
	Kind              string     `json:"kind"`
	DowngradedToSale  bool       `json:"downgraded_to_sale"`
	VariantID         *uuid.UUID `json:"variant_id,omitempty"`
	VariantName       string     `json:"variant_name,omitempty"`
	Unit              *string    `json:"unit,omitempty"`
	NumberOfTimeUnits float64    `json:"number_of_time_units"`
	RentalQty         float64    `json:"rental_qty"`
	BilledQty         float64    `json:"billed_qty"`
	UnitPrice         float64    `json:"unit_price"`
	Currency          string     `json:"currency"`
	PriceListID       *uuid.UUID `json:"pricelist_id,omitempty"`
	RuleID            *uuid.UUID `json:"rule_id,omitempty"`
	StockWarning      *string    `json:"stock_warning,omitempty"`
}

func NewQuoteResponse(res *commands.QuoteResult) QuoteResponse {
	resp := QuoteResponse{
		Kind:              string(res.Kind),
		DowngradedToSale:  res.DowngradedToSale,
		VariantID:         res.VariantID,
		VariantName:       res.VariantName,
		NumberOfTimeUnits: res.NumberOfTimeUnits,
		RentalQty:         res.RentalQty,
		BilledQty:         res.BilledQty,
		UnitPrice:         res.UnitPrice,
		Currency:          res.Currency,
		PriceListID:       res.PriceListID,
		RuleID:            res.RuleID,
	}
	if res.Unit != nil {
		u := res.Unit.String()
		resp.Unit = &u
	}
	if res.StockWarning != nil {
		msg := res.StockWarning.Message()
		resp.StockWarning = &msg
	}
	return resp
}
