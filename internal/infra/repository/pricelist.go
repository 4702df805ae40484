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

const ruleColumns = `
	id, pricelist_id, variant_id, unit, min_quantity,
	date_start, date_end, priority, compute_mode, fixed_price, percent_off`

type PriceListRepository struct {
	pool *pgxpool.Pool
}

func NewPriceListRepository(pool *pgxpool.Pool) *PriceListRepository {
	return &PriceListRepository{pool: pool}
}

func (r *PriceListRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PriceListRM, error) {
	var rm readmodel.PriceListRM
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, currency, is_interval_pricing, discount_policy
		 FROM pricelists WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.Name, &rm.Currency, &rm.IntervalPricing, &rm.DiscountPolicy)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("price list not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find price list by ID", err)
	}
	return &rm, nil
}

// RulesForVariant loads the rules that can possibly match a variant:
// its own scoped rules plus the generic ones of the list.
func (r *PriceListRepository) RulesForVariant(ctx context.Context, priceListID, variantID uuid.UUID) ([]*readmodel.PriceRuleRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ruleColumns+`
		 FROM pricelist_items
		 WHERE pricelist_id = $1 AND (variant_id = $2 OR variant_id IS NULL)
		 ORDER BY priority, min_quantity DESC`, priceListID, variantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find price rules for variant", err)
	}
	defer rows.Close()
	return collectRules(rows)
}

func (r *PriceListRepository) FindRules(ctx context.Context, priceListID uuid.UUID) ([]*readmodel.PriceRuleRM, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+ruleColumns+`
		 FROM pricelist_items
		 WHERE pricelist_id = $1
		 ORDER BY priority, min_quantity DESC`, priceListID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find price rules", err)
	}
	defer rows.Close()
	return collectRules(rows)
}

func collectRules(rows pgx.Rows) ([]*readmodel.PriceRuleRM, error) {
	var result []*readmodel.PriceRuleRM
	for rows.Next() {
		rm, err := scanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan price rule row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read price rule rows", err)
	}
	return result, nil
}

func scanRule(row pgx.Row) (*readmodel.PriceRuleRM, error) {
	var (
		rm          readmodel.PriceRuleRM
		variantID   pgtype.UUID
		unit        pgtype.Text
		minQuantity pgtype.Numeric
		dateStart   pgtype.Timestamptz
		dateEnd     pgtype.Timestamptz
		fixedPrice  pgtype.Numeric
		percentOff  pgtype.Numeric
	)

	err := row.Scan(
		&rm.ID, &rm.PriceListID, &variantID, &unit, &minQuantity,
		&dateStart, &dateEnd, &rm.Priority, &rm.ComputeMode, &fixedPrice, &percentOff,
	)
	if err != nil {
		return nil, err
	}

	rm.VariantID = pgconv.UUIDPtrFromPgtype(variantID)
	rm.Unit = pgconv.StringPtrFromPgtype(unit)
	rm.DateStart = pgconv.TimePtrFromPgtype(dateStart)
	rm.DateEnd = pgconv.TimePtrFromPgtype(dateEnd)

	for _, c := range []struct {
		src pgtype.Numeric
		dst *float64
	}{
		{minQuantity, &rm.MinQuantity},
		{fixedPrice, &rm.FixedPrice},
		{percentOff, &rm.PercentOff},
	} {
		v, err := pgconv.Float64FromNumeric(c.src)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}

	return &rm, nil
}
