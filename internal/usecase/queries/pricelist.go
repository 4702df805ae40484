package queries

import (
	"context"
	"time"

	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PriceListView struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Currency        string          `json:"currency"`
	IntervalPricing bool            `json:"is_interval_pricing"`
	DiscountPolicy  string          `json:"discount_policy"`
	Rules           []PriceRuleView `json:"rules"`
}

type PriceRuleView struct {
	ID          uuid.UUID  `json:"id"`
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

type PriceListQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PriceListView, error)
}

type PriceListViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PriceListRM, error)
	FindRules(ctx context.Context, priceListID uuid.UUID) ([]*readmodel.PriceRuleRM, error)
}

type priceListQueriesImpl struct {
	repo PriceListViewRepo
}

func NewPriceListQueries(repo PriceListViewRepo) PriceListQueries {
	return &priceListQueriesImpl{repo: repo}
}

func (q *priceListQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PriceListView, error) {
	rm, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rules, err := q.repo.FindRules(ctx, id)
	if err != nil {
		return nil, err
	}

	var view PriceListView
	if err := copier.Copy(&view, rm); err != nil {
		return nil, errs.Wrap(err, "failed to map price list view")
	}
	view.Rules = make([]PriceRuleView, 0, len(rules))
	for _, r := range rules {
		var rv PriceRuleView
		if err := copier.Copy(&rv, r); err != nil {
			return nil, errs.Wrap(err, "failed to map price rule view")
		}
		view.Rules = append(view.Rules, rv)
	}
	return &view, nil
}
