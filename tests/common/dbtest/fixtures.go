//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestPriceList(t *testing.T, db DBLike, name, currency string, intervalPricing bool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO pricelists (id, name, currency, is_interval_pricing) VALUES ($1, $2, $3, $4)",
		id, name, currency, intervalPricing)
	require.NoError(t, err)
	return id
}

// CreateTestRentalProduct inserts a product with one day-rental service
// variant and returns both IDs.
func CreateTestRentalProduct(t *testing.T, db DBLike, name string, pricePerDay float64) (productID, variantID uuid.UUID) {
	t.Helper()

	productID = uuid.New()
	variantID = uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, name, rentable, sale_ok, rentable_by_day, price_per_day) VALUES ($1, $2, true, true, true, $3)",
		productID, name, pricePerDay)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO product_variants (id, name, unit, product_id, rented_product_id, list_price) VALUES ($1, $2, 'day', $3, $3, $4)",
		variantID, name+" (Day)", productID, pricePerDay)
	require.NoError(t, err)

	_, err = db.Exec(ctx, "UPDATE products SET day_variant_id = $1 WHERE id = $2", variantID, productID)
	require.NoError(t, err)

	return productID, variantID
}

func CreateTestStockLocation(t *testing.T, db DBLike, name string, onHand float64, productID uuid.UUID) uuid.UUID {
	t.Helper()

	locationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO stock_locations (id, name, is_rental_in) VALUES ($1, $2, true)",
		locationID, name)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO stock_levels (product_id, location_id, on_hand, outgoing) VALUES ($1, $2, $3, 0)",
		productID, locationID, onHand)
	require.NoError(t, err)

	return locationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
