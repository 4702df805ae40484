package commands

import (
	"context"

	"rental-sales-api/internal/domain/pricelist"
	"rental-sales-api/internal/domain/product"
	"rental-sales-api/internal/domain/rentalline"
	"rental-sales-api/internal/domain/tax"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/pkg/clock"
	"rental-sales-api/internal/pkg/config"
	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// TriggerField names the order-line field whose edit drives the
// recompute. Each field maps to an explicit, ordered list of steps; an
// unknown or empty field runs the full pipeline.
type TriggerField string

const (
	TriggerProduct   TriggerField = "product"
	TriggerUnit      TriggerField = "unit"
	TriggerRentalQty TriggerField = "rental_qty"
	TriggerTimeUnits TriggerField = "number_of_time_units"
	TriggerStartDate TriggerField = "start_date"
	TriggerEndDate   TriggerField = "end_date"
)

type pipelineStep int

const (
	stepResolveVariant pipelineStep = iota
	stepComputeTimeUnits
	stepCheckAvailability
	stepResolvePrice
)

// triggerTable is the explicit replacement for reactive onchange
// cascades: each edited field invokes a fixed, ordered subset of the
// pipeline, eagerly and synchronously.
var triggerTable = map[TriggerField][]pipelineStep{
	TriggerProduct:   {stepResolveVariant, stepComputeTimeUnits, stepCheckAvailability, stepResolvePrice},
	TriggerUnit:      {stepResolveVariant, stepComputeTimeUnits, stepResolvePrice},
	TriggerRentalQty: {stepCheckAvailability, stepResolvePrice},
	TriggerTimeUnits: {stepResolvePrice},
	TriggerStartDate: {stepComputeTimeUnits, stepResolvePrice},
	TriggerEndDate:   {stepComputeTimeUnits, stepResolvePrice},
}

// QuoteResult carries every derived field written back to the order
// line, plus the advisory stock warning.
type QuoteResult struct {
	Kind              rentalline.LineKind
	DowngradedToSale  bool
	VariantID         *uuid.UUID
	VariantName       string
	Unit              *timeunit.Kind
	NumberOfTimeUnits float64
	RentalQty         float64
	BilledQty         float64
	UnitPrice         float64
	Currency          string
	PriceListID       *uuid.UUID
	RuleID            *uuid.UUID
	StockWarning      *rentalline.StockWarning
}

type RentalLineCommands interface {
	Quote(ctx context.Context, req rentalline.Request, changed TriggerField) (*QuoteResult, error)
}

type rentalLineUseCaseImpl struct {
	products   ProductRepository
	variants   VariantRepository
	priceLists PriceListRepository
	stock      StockRepository
	taxes      TaxRepository
	units      *timeunit.Registry
	clock      clock.Clock
	cfg        config.RentalConfig
}

func NewRentalLineUseCase(
	products ProductRepository,
	variants VariantRepository,
	priceLists PriceListRepository,
	stock StockRepository,
	taxes TaxRepository,
	units *timeunit.Registry,
	clk clock.Clock,
	cfg config.RentalConfig,
) RentalLineCommands {
	return &rentalLineUseCaseImpl{
		products:   products,
		variants:   variants,
		priceLists: priceLists,
		stock:      stock,
		taxes:      taxes,
		units:      units,
		clock:      clk,
		cfg:        cfg,
	}
}

// lineState is the mutable working copy of the order line for one
// pipeline run. It exists only for the duration of the Quote call.
type lineState struct {
	req       rentalline.Request
	kind      rentalline.LineKind
	unit      *timeunit.Kind
	variant   *readmodel.VariantRM
	timeUnits float64
	rentalQty float64
	billedQty float64
	unitPrice float64
	ruleID    *uuid.UUID
	warning   *rentalline.StockWarning
	downgrade bool

	prod      *product.RentalProduct
	prodRM    *readmodel.ProductRM
	priceList *pricelist.PriceList
}

func (u *rentalLineUseCaseImpl) Quote(ctx context.Context, req rentalline.Request, changed TriggerField) (*QuoteResult, error) {
	if err := req.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	state, err := u.loadState(ctx, req)
	if err != nil {
		return nil, err
	}

	steps, ok := triggerTable[changed]
	if !ok {
		steps = triggerTable[TriggerProduct]
	}

	// Triggers that do not re-resolve the variant still need it for the
	// later steps.
	if !containsStep(steps, stepResolveVariant) {
		if err := u.resolveVariant(ctx, state); err != nil {
			return nil, err
		}
	}

	for _, step := range steps {
		if err := u.runStep(ctx, step, state); err != nil {
			return nil, err
		}
	}

	return state.result(), nil
}

func (u *rentalLineUseCaseImpl) runStep(ctx context.Context, step pipelineStep, s *lineState) error {
	switch step {
	case stepResolveVariant:
		return u.resolveVariant(ctx, s)
	case stepComputeTimeUnits:
		return u.computeTimeUnits(s)
	case stepCheckAvailability:
		return u.checkAvailability(ctx, s)
	case stepResolvePrice:
		return u.resolvePrice(ctx, s)
	default:
		return errs.Newf("unknown pipeline step %d", step)
	}
}

func (u *rentalLineUseCaseImpl) loadState(ctx context.Context, req rentalline.Request) (*lineState, error) {
	prodRM, err := u.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, markRepoErr(err, errs.ErrProductNotFound)
	}
	prod, err := toDomainProduct(prodRM)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	s := &lineState{
		req:       req,
		kind:      req.Kind,
		unit:      req.Unit,
		timeUnits: req.NumberOfTimeUnits,
		rentalQty: req.RentalQty,
		billedQty: req.RentalQty,
		prod:      prod,
		prodRM:    prodRM,
	}

	plID := req.PriceListID
	if plID == nil {
		plID = prod.DefPriceListID()
	}
	if plID != nil {
		plRM, err := u.priceLists.FindByID(ctx, *plID)
		if err != nil {
			return nil, markRepoErr(err, errs.ErrPriceListNotFound)
		}
		pl, err := toDomainPriceList(plRM)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		s.priceList = pl
	}
	return s, nil
}

// resolveVariant picks the rental service for the current unit, or
// downgrades the line to a plain sale when the product cannot be rented
// the requested way. Any previously resolved variant is discarded, so a
// unit switch never keeps a stale reference.
func (u *rentalLineUseCaseImpl) resolveVariant(ctx context.Context, s *lineState) error {
	s.variant = nil

	if !s.req.IsRental() {
		s.unit = s.req.Unit
		return nil
	}

	resolved, err := s.prod.ResolveVariant(s.unit, u.intervalPricing(s))
	if err != nil {
		if errs.Is(err, product.ErrNoRentalCapability) {
			s.downgradeToSale()
			return nil
		}
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	variantRM, err := u.variants.FindByID(ctx, resolved.VariantID)
	if err != nil {
		return markRepoErr(err, errs.ErrVariantNotFound)
	}
	if variantRM.RentedProductID == nil {
		return errs.Mark(
			errs.Newf("rental service %q has no rented product", variantRM.Name),
			errs.ErrMissingRentalService,
		)
	}

	s.variant = variantRM
	unit := resolved.Unit
	s.unit = &unit
	return nil
}

func (u *rentalLineUseCaseImpl) computeTimeUnits(s *lineState) error {
	if s.unit == nil || s.variant == nil {
		return nil
	}
	unit, err := u.units.Resolve(*s.unit)
	if err != nil {
		return errs.Mark(err, errs.ErrUnknownTimeUnit)
	}
	n, err := rentalline.ComputeTimeUnits(unit, s.req.StartDate, s.req.EndDate, s.timeUnits)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidRentalDates)
	}
	s.timeUnits = n
	return nil
}

// checkAvailability never blocks the quote; it only attaches a warning.
func (u *rentalLineUseCaseImpl) checkAvailability(ctx context.Context, s *lineState) error {
	s.warning = nil
	if s.variant == nil || s.variant.RentedProductID == nil || s.rentalQty == 0 {
		return nil
	}

	loc, err := u.stock.RentalInLocation(ctx, s.req.WarehouseID)
	if err != nil {
		return markRepoErr(err, errs.ErrStockLocationNotFound)
	}
	levels, err := u.stock.Levels(ctx, *s.variant.RentedProductID, loc.ID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	unit, err := u.units.Resolve(unitOrDefault(s.unit))
	if err != nil {
		return errs.Mark(err, errs.ErrUnknownTimeUnit)
	}

	snap := rentalline.AvailabilitySnapshot{OnHand: levels.OnHand, Outgoing: levels.Outgoing}
	s.warning = rentalline.CheckAvailability(snap, s.rentalQty, unit.Rounding(), unit.Name(), loc.Name)
	return nil
}

func (u *rentalLineUseCaseImpl) resolvePrice(ctx context.Context, s *lineState) error {
	if s.variant == nil || s.unit == nil {
		// plain sale of the base product
		s.billedQty = s.rentalQty
		s.unitPrice = tax.Round(s.prodRM.ListPrice, u.cfg.PriceDecimals)
		return nil
	}

	unitKind := *s.unit

	if unitKind == timeunit.KindInterval {
		if limit := s.prod.MaxIntervalDays(); limit > 0 && s.timeUnits > limit {
			return errs.Mark(
				errs.Newf("max rental interval (%g days) is exceeded", limit),
				errs.ErrMaxIntervalDays,
			)
		}
	}

	unit, err := u.units.Resolve(unitKind)
	if err != nil {
		return errs.Mark(err, errs.ErrUnknownTimeUnit)
	}
	s.billedQty = rentalline.BilledQuantity(unit, s.rentalQty, s.timeUnits)

	price := s.variant.ListPrice
	if s.priceList != nil {
		rules, err := u.loadRules(ctx, s)
		if err != nil {
			return err
		}
		key := pricelist.LookupKey{
			VariantID: s.variant.ID,
			Unit:      unitKind,
			Quantity:  u.ruleQuantity(s, unitKind),
			Date:      u.clock.Now(),
			Currency:  s.req.Currency,
		}
		eval, err := s.priceList.ComputePrice(rules, key, s.variant.ListPrice)
		if err != nil {
			if errs.Is(err, pricelist.ErrCurrencyMismatch) {
				return errs.Mark(err, errs.ErrCurrencyMismatch)
			}
			return errs.Mark(err, errs.ErrPriceResolution)
		}
		price = eval.UnitPrice
		s.ruleID = eval.RuleID
	}

	price, err = u.fixTaxIncluded(ctx, s, price)
	if err != nil {
		return err
	}
	s.unitPrice = tax.Round(price, u.cfg.PriceDecimals)
	return nil
}

// ruleQuantity is the quantity the rule breakpoints are evaluated
// against: elapsed time units for interval pricing, billed quantity for
// discrete units.
func (u *rentalLineUseCaseImpl) ruleQuantity(s *lineState, kind timeunit.Kind) float64 {
	if kind == timeunit.KindInterval {
		return s.timeUnits
	}
	return s.billedQty
}

func (u *rentalLineUseCaseImpl) loadRules(ctx context.Context, s *lineState) ([]pricelist.Rule, error) {
	ruleRMs, err := u.priceLists.RulesForVariant(ctx, s.priceList.ID(), s.variant.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	rules := make([]pricelist.Rule, 0, len(ruleRMs))
	for _, rm := range ruleRMs {
		r, err := toDomainRule(rm)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func (u *rentalLineUseCaseImpl) fixTaxIncluded(ctx context.Context, s *lineState, price float64) (float64, error) {
	productTaxes, err := u.taxes.TaxesForVariant(ctx, s.variant.ID)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(productTaxes) == 0 {
		return price, nil
	}
	lineTaxes := productTaxes
	if len(s.req.LineTaxIDs) > 0 {
		lineTaxes, err = u.taxes.FindByIDs(ctx, s.req.LineTaxIDs)
		if err != nil {
			return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return tax.FixTaxIncludedPrice(price, toDomainTaxes(productTaxes), toDomainTaxes(lineTaxes)), nil
}

func (u *rentalLineUseCaseImpl) intervalPricing(s *lineState) bool {
	return s.priceList != nil && s.priceList.IsIntervalPricing()
}

func (s *lineState) downgradeToSale() {
	s.kind = rentalline.KindSale
	s.unit = nil
	s.variant = nil
	s.ruleID = nil
	s.warning = nil
	s.downgrade = true
}

func (s *lineState) result() *QuoteResult {
	res := &QuoteResult{
		Kind:              s.kind,
		DowngradedToSale:  s.downgrade,
		Unit:              s.unit,
		NumberOfTimeUnits: s.timeUnits,
		RentalQty:         s.rentalQty,
		BilledQty:         s.billedQty,
		UnitPrice:         s.unitPrice,
		RuleID:            s.ruleID,
		StockWarning:      s.warning,
	}
	if s.variant != nil {
		id := s.variant.ID
		res.VariantID = &id
		res.VariantName = s.variant.Name
	}
	if s.priceList != nil {
		id := s.priceList.ID()
		res.PriceListID = &id
		res.Currency = s.priceList.Currency()
	} else {
		res.Currency = s.req.Currency
	}
	return res
}

func containsStep(steps []pipelineStep, step pipelineStep) bool {
	for _, s := range steps {
		if s == step {
			return true
		}
	}
	return false
}

func unitOrDefault(k *timeunit.Kind) timeunit.Kind {
	if k == nil {
		return timeunit.KindDay
	}
	return *k
}
