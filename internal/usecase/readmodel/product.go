package readmodel

import (
	"github.com/google/uuid"
)

type ProductRM struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Rentable        bool       `json:"rentable"`
	SaleOK          bool       `json:"sale_ok"`
	ListPrice       float64    `json:"list_price"`
	RentableByHour  bool       `json:"rentable_by_hour"`
	RentableByDay   bool       `json:"rentable_by_day"`
	RentableByMonth bool       `json:"rentable_by_month"`
	RentableByInt   bool       `json:"rentable_by_interval"`
	HourVariantID   *uuid.UUID `json:"hour_variant_id,omitempty"`
	DayVariantID    *uuid.UUID `json:"day_variant_id,omitempty"`
	MonthVariantID  *uuid.UUID `json:"month_variant_id,omitempty"`
	IntVariantID    *uuid.UUID `json:"interval_variant_id,omitempty"`
	PricePerHour    float64    `json:"price_per_hour"`
	PricePerDay     float64    `json:"price_per_day"`
	PricePerMonth   float64    `json:"price_per_month"`
	PricePerInt     float64    `json:"price_per_interval"`
	MaxIntervalDays float64    `json:"max_interval_days"`
	DefPriceListID  *uuid.UUID `json:"default_pricelist_id,omitempty"`
}

type VariantRM struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Unit            string     `json:"unit"`
	ProductID       uuid.UUID  `json:"product_id"`
	RentedProductID *uuid.UUID `json:"rented_product_id,omitempty"`
	ListPrice       float64    `json:"list_price"`
}
