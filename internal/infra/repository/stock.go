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

type StockRepository struct {
	pool *pgxpool.Pool
}

func NewStockRepository(pool *pgxpool.Pool) *StockRepository {
	return &StockRepository{pool: pool}
}

// RentalInLocation finds the rental return location scoped to the
// warehouse, falling back to the unscoped default when warehouseID is
// nil.
func (r *StockRepository) RentalInLocation(ctx context.Context, warehouseID *uuid.UUID) (*readmodel.LocationRM, error) {
	var (
		rm     readmodel.LocationRM
		whID   pgtype.UUID
		isRIn  bool
	)

	query := `SELECT id, name, warehouse_id, is_rental_in
		 FROM stock_locations
		 WHERE is_rental_in AND warehouse_id IS NULL
		 ORDER BY name LIMIT 1`
	args := []any{}
	if warehouseID != nil {
		query = `SELECT id, name, warehouse_id, is_rental_in
			 FROM stock_locations
			 WHERE is_rental_in AND warehouse_id = $1
			 ORDER BY name LIMIT 1`
		args = append(args, *warehouseID)
	}

	err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.Name, &whID, &isRIn)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rental return location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rental return location", err)
	}

	rm.WarehouseID = pgconv.UUIDPtrFromPgtype(whID)
	rm.IsRentalIn = isRIn
	return &rm, nil
}

// Levels reads the current on-hand and outgoing quantities. A missing
// row means zero stock, not an error.
func (r *StockRepository) Levels(ctx context.Context, productID, locationID uuid.UUID) (*readmodel.StockLevelRM, error) {
	var (
		onHand   pgtype.Numeric
		outgoing pgtype.Numeric
	)

	rm := &readmodel.StockLevelRM{ProductID: productID, LocationID: locationID}

	err := r.pool.QueryRow(ctx,
		`SELECT on_hand, outgoing FROM stock_levels
		 WHERE product_id = $1 AND location_id = $2`, productID, locationID,
	).Scan(&onHand, &outgoing)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return rm, nil
		}
		return nil, infra.WrapRepoErr("failed to read stock levels", err)
	}

	if rm.OnHand, err = pgconv.Float64FromNumeric(onHand); err != nil {
		return nil, infra.WrapRepoErr("failed to convert on-hand quantity", err)
	}
	if rm.Outgoing, err = pgconv.Float64FromNumeric(outgoing); err != nil {
		return nil, infra.WrapRepoErr("failed to convert outgoing quantity", err)
	}
	return rm, nil
}
