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

type TaxRepository struct {
	pool *pgxpool.Pool
}

func NewTaxRepository(pool *pgxpool.Pool) *TaxRepository {
	return &TaxRepository{pool: pool}
}

func (r *TaxRepository) TaxesForVariant(ctx context.Context, variantID uuid.UUID) ([]*readmodel.TaxRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT t.id, t.name, t.percent, t.price_include
		 FROM taxes t
		 JOIN product_taxes pt ON pt.tax_id = t.id
		 WHERE pt.variant_id = $1
		 ORDER BY t.name`, variantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find taxes for variant", err)
	}
	defer rows.Close()
	return collectTaxes(rows)
}

func (r *TaxRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*readmodel.TaxRM, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, percent, price_include
		 FROM taxes WHERE id = ANY($1)
		 ORDER BY name`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find taxes by IDs", err)
	}
	defer rows.Close()
	return collectTaxes(rows)
}

func collectTaxes(rows pgx.Rows) ([]*readmodel.TaxRM, error) {
	var result []*readmodel.TaxRM
	for rows.Next() {
		var (
			rm      readmodel.TaxRM
			percent pgtype.Numeric
		)
		if err := rows.Scan(&rm.ID, &rm.Name, &percent, &rm.PriceInclude); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tax row", err)
		}
		v, err := pgconv.Float64FromNumeric(percent)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert tax percent", err)
		}
		rm.Percent = v
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read tax rows", err)
	}
	return result, nil
}
