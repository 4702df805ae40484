package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type PriceListRM struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Currency        string    `json:"currency"`
	IntervalPricing bool      `json:"is_interval_pricing"`
	DiscountPolicy  string    `json:"discount_policy"`
}

type PriceRuleRM struct {
	ID          uuid.UUID  `json:"id"`
	PriceListID uuid.UUID  `json:"pricelist_id"`
	VariantID   *uuid.UUID `json:"variant_id,omitempty"`
	Unit        *string    `json:"unit,omitempty"`
	MinQuantity float64    `json:"min_quantity"`
	DateStart   *time.Time `json:"date_start,omitempty"`
	DateEnd     *time.Time `json:"date_end,omitempty"`
	Priority    int        `json:"priority"`
	ComputeMode string     `json:"compute_mode"`
	FixedPrice  float64    `json:"fixed_price"`
	PercentOff  float64    `json:"percent_off"`
}
