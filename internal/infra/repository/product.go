package repository

import (
	"context"

	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/pkg/pgconv"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `
	id, name, rentable, sale_ok, list_price,
	rentable_by_hour, rentable_by_day, rentable_by_month, rentable_by_interval,
	hour_variant_id, day_variant_id, month_variant_id, interval_variant_id,
	price_per_hour, price_per_day, price_per_month, price_per_interval,
	max_interval_days, default_pricelist_id`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	rm, err := scanProduct(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return rm, nil
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*readmodel.ProductRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find all products", err)
	}
	defer rows.Close()

	var result []*readmodel.ProductRM
	for rows.Next() {
		rm, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return result, nil
}

func scanProduct(row pgx.Row) (*readmodel.ProductRM, error) {
	var (
		rm             readmodel.ProductRM
		listPrice      pgtype.Numeric
		hourVariant    pgtype.UUID
		dayVariant     pgtype.UUID
		monthVariant   pgtype.UUID
		intVariant     pgtype.UUID
		perHour        pgtype.Numeric
		perDay         pgtype.Numeric
		perMonth       pgtype.Numeric
		perInt         pgtype.Numeric
		maxInterval    pgtype.Numeric
		defPriceListID pgtype.UUID
	)

	err := row.Scan(
		&rm.ID, &rm.Name, &rm.Rentable, &rm.SaleOK, &listPrice,
		&rm.RentableByHour, &rm.RentableByDay, &rm.RentableByMonth, &rm.RentableByInt,
		&hourVariant, &dayVariant, &monthVariant, &intVariant,
		&perHour, &perDay, &perMonth, &perInt,
		&maxInterval, &defPriceListID,
	)
	if err != nil {
		return nil, err
	}

	rm.HourVariantID = pgconv.UUIDPtrFromPgtype(hourVariant)
	rm.DayVariantID = pgconv.UUIDPtrFromPgtype(dayVariant)
	rm.MonthVariantID = pgconv.UUIDPtrFromPgtype(monthVariant)
	rm.IntVariantID = pgconv.UUIDPtrFromPgtype(intVariant)
	rm.DefPriceListID = pgconv.UUIDPtrFromPgtype(defPriceListID)

	for _, c := range []struct {
		src pgtype.Numeric
		dst *float64
	}{
		{listPrice, &rm.ListPrice},
		{perHour, &rm.PricePerHour},
		{perDay, &rm.PricePerDay},
		{perMonth, &rm.PricePerMonth},
		{perInt, &rm.PricePerInt},
		{maxInterval, &rm.MaxIntervalDays},
	} {
		v, err := pgconv.Float64FromNumeric(c.src)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}

	return &rm, nil
}
