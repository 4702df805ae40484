package repository

import (
	"context"

	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/pkg/pgconv"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VariantRepository struct {
	pool *pgxpool.Pool
}

func NewVariantRepository(pool *pgxpool.Pool) *VariantRepository {
	return &VariantRepository{pool: pool}
}

func (r *VariantRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.VariantRM, error) {
	var (
		rm              readmodel.VariantRM
		rentedProductID pgtype.UUID
		listPrice       pgtype.Numeric
	)

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, unit, product_id, rented_product_id, list_price
		 FROM product_variants WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.Name, &rm.Unit, &rm.ProductID, &rentedProductID, &listPrice)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("variant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find variant by ID", err)
	}

	rm.RentedProductID = pgconv.UUIDPtrFromPgtype(rentedProductID)
	price, err := pgconv.Float64FromNumeric(listPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert variant list price", err)
	}
	rm.ListPrice = price

	return &rm, nil
}
