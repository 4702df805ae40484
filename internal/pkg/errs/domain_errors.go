package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Product / variant errors
	ErrProductNotFound      = errors.New("product not found")
	ErrVariantNotFound      = errors.New("rental service variant not found")
	ErrNoRentalCapability   = errors.New("product has no rental capability for the requested unit")
	ErrMissingRentalService = errors.New("rental line requires a rental service product")

	// Price list errors
	ErrPriceListNotFound  = errors.New("price list not found")
	ErrUnknownTimeUnit    = errors.New("unknown rental time unit")
	ErrMaxIntervalDays    = errors.New("max rental interval exceeded")
	ErrPriceResolution    = errors.New("price resolution failed")
	ErrCurrencyMismatch   = errors.New("currency does not match price list")
	ErrInvalidRentalDates = errors.New("invalid rental date range")

	// Rental line validation errors
	ErrMissingExtensionSource  = errors.New("rental extension requires the rental to extend")
	ErrExtensionQtyMismatch    = errors.New("extension quantity differs from the original rental quantity")
	ErrSellRentalQtyMismatch   = errors.New("sale quantity differs from the rented quantity")
	ErrNegativeRentalQuantity  = errors.New("rental quantity cannot be negative")
	ErrStockLocationNotFound   = errors.New("rental stock location not found")
	ErrDomainValidation        = errors.New("domain validation error")
	ErrDatabaseOperationFailed = errors.New("database operation failed")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)
