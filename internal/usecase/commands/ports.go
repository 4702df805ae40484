package commands

import (
	"context"

	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Repository ports consumed by the command layer. Implementations live
// in internal/infra; reads within one quote observe one consistent
// snapshot (single connection, no engine-side locking).

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error)
}

type VariantRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.VariantRM, error)
}

type PriceListRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PriceListRM, error)
	RulesForVariant(ctx context.Context, priceListID, variantID uuid.UUID) ([]*readmodel.PriceRuleRM, error)
}

type StockRepository interface {
	// RentalInLocation returns the rental return location of the
	// warehouse, or the default one when warehouseID is nil.
	RentalInLocation(ctx context.Context, warehouseID *uuid.UUID) (*readmodel.LocationRM, error)
	// Levels reads on-hand and outgoing quantities for a stock product
	// at a location, valid only for the instant of the read.
	Levels(ctx context.Context, productID, locationID uuid.UUID) (*readmodel.StockLevelRM, error)
}

type TaxRepository interface {
	TaxesForVariant(ctx context.Context, variantID uuid.UUID) ([]*readmodel.TaxRM, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*readmodel.TaxRM, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error)
	RecordLogin(ctx context.Context, id uuid.UUID) error
}
