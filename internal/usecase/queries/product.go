package queries

import (
	"context"

	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// ProductView is the catalog read model exposed over the API.
type ProductView struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Rentable        bool       `json:"rentable"`
	SaleOK          bool       `json:"sale_ok"`
	RentableByHour  bool       `json:"rentable_by_hour"`
	RentableByDay   bool       `json:"rentable_by_day"`
	RentableByMonth bool       `json:"rentable_by_month"`
	RentableByInt   bool       `json:"rentable_by_interval"`
	PricePerHour    float64    `json:"price_per_hour"`
	PricePerDay     float64    `json:"price_per_day"`
	PricePerMonth   float64    `json:"price_per_month"`
	PricePerInt     float64    `json:"price_per_interval"`
	MaxIntervalDays float64    `json:"max_interval_days"`
	DefPriceListID  *uuid.UUID `json:"default_pricelist_id,omitempty"`
}

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context) ([]*ProductView, error)
}

type ProductViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error)
	FindAll(ctx context.Context) ([]*readmodel.ProductRM, error)
}

type productQueriesImpl struct {
	repo ProductViewRepo
}

func NewProductQueries(repo ProductViewRepo) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	rm, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductView(rm)
}

func (q *productQueriesImpl) List(ctx context.Context) ([]*ProductView, error) {
	rms, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ProductView, 0, len(rms))
	for _, rm := range rms {
		v, err := toProductView(rm)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func toProductView(rm *readmodel.ProductRM) (*ProductView, error) {
	var v ProductView
	if err := copier.Copy(&v, rm); err != nil {
		return nil, errs.Wrap(err, "failed to map product view")
	}
	return &v, nil
}
