//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/pkg/clock"
	"rental-sales-api/internal/pkg/config"
	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/commands"
	"rental-sales-api/internal/usecase/readmodel"
	"rental-sales-api/tests/common/builder"
	commandsmock "rental-sales-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalLineUseCaseTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockProducts   *commandsmock.MockProductRepository
	mockVariants   *commandsmock.MockVariantRepository
	mockPriceLists *commandsmock.MockPriceListRepository
	mockStock      *commandsmock.MockStockRepository
	mockTaxes      *commandsmock.MockTaxRepository
	clock          *clock.MockClock
	useCase        commands.RentalLineCommands
}

func TestRentalLineUseCaseSuite(t *testing.T) {
	suite.Run(t, new(RentalLineUseCaseTestSuite))
}

func (s *RentalLineUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProducts = commandsmock.NewMockProductRepository(s.mockCtrl)
	s.mockVariants = commandsmock.NewMockVariantRepository(s.mockCtrl)
	s.mockPriceLists = commandsmock.NewMockPriceListRepository(s.mockCtrl)
	s.mockStock = commandsmock.NewMockStockRepository(s.mockCtrl)
	s.mockTaxes = commandsmock.NewMockTaxRepository(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	s.useCase = commands.NewRentalLineUseCase(
		s.mockProducts,
		s.mockVariants,
		s.mockPriceLists,
		s.mockStock,
		s.mockTaxes,
		timeunit.NewRegistry(),
		s.clock,
		config.RentalConfig{DefaultCurrency: "EUR", PriceDecimals: 2},
	)
}

func (s *RentalLineUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RentalLineUseCaseTestSuite) rentalInLocation() *readmodel.LocationRM {
	return &readmodel.LocationRM{ID: uuid.New(), Name: "Rental In", IsRentalIn: true}
}

func (s *RentalLineUseCaseTestSuite) expectStock(productID uuid.UUID, onHand float64) {
	loc := s.rentalInLocation()
	s.mockStock.EXPECT().RentalInLocation(gomock.Any(), nil).Return(loc, nil)
	s.mockStock.EXPECT().Levels(gomock.Any(), productID, loc.ID).
		Return(&readmodel.StockLevelRM{ProductID: productID, LocationID: loc.ID, OnHand: onHand}, nil)
}

func (s *RentalLineUseCaseTestSuite) expectNoTaxes(variantID uuid.UUID) {
	s.mockTaxes.EXPECT().TaxesForVariant(gomock.Any(), variantID).Return(nil, nil)
}

func (s *RentalLineUseCaseTestSuite) TestQuoteDayRental() {
	s.Run("success: full pipeline derives unit, quantity and price", func() {
		prod := builder.NewProductBuilder()
		variant := prod.BuildVariantReadModel(timeunit.KindDay)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.expectStock(prod.ID, 5)
		s.expectNoTaxes(variant.ID)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(2, 3).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Require().NotNil(res.VariantID)
		s.Equal(variant.ID, *res.VariantID)
		s.Equal(timeunit.KindDay, *res.Unit)
		s.Equal(6.0, res.BilledQty)
		s.Equal(100.0, res.UnitPrice)
		s.False(res.DowngradedToSale)
		s.Nil(res.StockWarning)
	})

	s.Run("success: shortfall attaches an advisory warning", func() {
		prod := builder.NewProductBuilder()
		variant := prod.BuildVariantReadModel(timeunit.KindDay)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.expectStock(prod.ID, 4)
		s.expectNoTaxes(variant.ID)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(5, 1).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Require().NotNil(res.StockWarning)
		s.Equal(5.0, res.StockWarning.RequestedQty)
		s.Equal(4.0, res.StockWarning.AvailableQty)
		s.Equal(5.0, res.BilledQty, "warning must not block the quote")
	})

	s.Run("success: time-unit trigger skips the availability check", func() {
		prod := builder.NewProductBuilder()
		variant := prod.BuildVariantReadModel(timeunit.KindDay)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.expectNoTaxes(variant.ID)
		// no stock expectations: the trigger must not touch the stock port

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(2, 4).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerTimeUnits)

		s.Require().NoError(err)
		s.Equal(8.0, res.BilledQty)
		s.Nil(res.StockWarning)
	})
}

func (s *RentalLineUseCaseTestSuite) TestQuoteWithPriceList() {
	s.Run("success: matching rule sets the unit price", func() {
		plBuilder := builder.NewPriceListBuilder()
		prod := builder.NewProductBuilder().WithDefaultPriceList(plBuilder.ID)
		variant := prod.BuildVariantReadModel(timeunit.KindDay)
		rule := builder.NewRuleBuilder(plBuilder.ID).WithMinQuantity(3).WithFixedPrice(80)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockPriceLists.EXPECT().FindByID(gomock.Any(), plBuilder.ID).Return(plBuilder.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.mockPriceLists.EXPECT().RulesForVariant(gomock.Any(), plBuilder.ID, variant.ID).
			Return([]*readmodel.PriceRuleRM{rule.BuildReadModel()}, nil)
		s.expectStock(prod.ID, 10)
		s.expectNoTaxes(variant.ID)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(2, 3).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Equal(80.0, res.UnitPrice)
		s.Require().NotNil(res.RuleID)
		s.Equal(rule.ID, *res.RuleID)
	})

	s.Run("success: without_discount never understates the base price", func() {
		plBuilder := builder.NewPriceListBuilder().WithoutDiscountPolicy()
		prod := builder.NewProductBuilder().WithDefaultPriceList(plBuilder.ID)
		variant := prod.BuildVariantReadModel(timeunit.KindDay)
		rule := builder.NewRuleBuilder(plBuilder.ID).WithFixedPrice(60)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockPriceLists.EXPECT().FindByID(gomock.Any(), plBuilder.ID).Return(plBuilder.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.mockPriceLists.EXPECT().RulesForVariant(gomock.Any(), plBuilder.ID, variant.ID).
			Return([]*readmodel.PriceRuleRM{rule.BuildReadModel()}, nil)
		s.expectStock(prod.ID, 10)
		s.expectNoTaxes(variant.ID)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(1, 1).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Equal(100.0, res.UnitPrice)
	})

	s.Run("error: currency mismatch fails the quote", func() {
		plBuilder := builder.NewPriceListBuilder().WithCurrency("USD")
		prod := builder.NewProductBuilder().WithDefaultPriceList(plBuilder.ID)
		variant := prod.BuildVariantReadModel(timeunit.KindDay)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockPriceLists.EXPECT().FindByID(gomock.Any(), plBuilder.ID).Return(plBuilder.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.mockPriceLists.EXPECT().RulesForVariant(gomock.Any(), plBuilder.ID, variant.ID).Return(nil, nil)
		s.expectStock(prod.ID, 10)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(1, 1).BuildDomain()
		_, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrCurrencyMismatch))
	})
}

func (s *RentalLineUseCaseTestSuite) TestQuoteIntervalRental() {
	setup := func(maxIntervalDays float64) (*builder.ProductBuilder, *builder.PriceListBuilder) {
		plBuilder := builder.NewPriceListBuilder().AsIntervalPricing()
		prod := builder.NewProductBuilder().
			WithUnit(timeunit.KindInterval, 50).
			WithMaxIntervalDays(maxIntervalDays).
			WithDefaultPriceList(plBuilder.ID)
		return prod, plBuilder
	}

	s.Run("success: interval bills the rental quantity over the day count", func() {
		prod, plBuilder := setup(30)
		variant := prod.BuildVariantReadModel(timeunit.KindInterval)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockPriceLists.EXPECT().FindByID(gomock.Any(), plBuilder.ID).Return(plBuilder.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.mockPriceLists.EXPECT().RulesForVariant(gomock.Any(), plBuilder.ID, variant.ID).Return(nil, nil)
		s.expectStock(prod.ID, 10)
		s.expectNoTaxes(variant.ID)

		req := builder.NewRentalLineBuilder().
			ForProduct(prod.ID).
			WithUnit(timeunit.KindInterval).
			WithQty(2, 0).
			WithDates(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)).
			BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Equal(10.0, res.NumberOfTimeUnits)
		s.Equal(2.0, res.BilledQty)
		s.Equal(50.0, res.UnitPrice)
	})

	s.Run("error: exceeding the max interval is a hard failure", func() {
		prod, plBuilder := setup(30)
		variant := prod.BuildVariantReadModel(timeunit.KindInterval)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockPriceLists.EXPECT().FindByID(gomock.Any(), plBuilder.ID).Return(plBuilder.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.expectStock(prod.ID, 10)

		req := builder.NewRentalLineBuilder().
			ForProduct(prod.ID).
			WithUnit(timeunit.KindInterval).
			WithQty(1, 0).
			WithDates(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)).
			BuildDomain()
		_, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrMaxIntervalDays))
	})

	s.Run("success: the cap boundary itself is allowed", func() {
		prod, plBuilder := setup(30)
		variant := prod.BuildVariantReadModel(timeunit.KindInterval)

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockPriceLists.EXPECT().FindByID(gomock.Any(), plBuilder.ID).Return(plBuilder.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.mockPriceLists.EXPECT().RulesForVariant(gomock.Any(), plBuilder.ID, variant.ID).Return(nil, nil)
		s.expectStock(prod.ID, 10)
		s.expectNoTaxes(variant.ID)

		req := builder.NewRentalLineBuilder().
			ForProduct(prod.ID).
			WithUnit(timeunit.KindInterval).
			WithQty(1, 0).
			WithDates(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)).
			BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Equal(30.0, res.NumberOfTimeUnits)
	})
}

func (s *RentalLineUseCaseTestSuite) TestQuoteDowngrade() {
	s.Run("success: non-rentable product becomes a plain sale", func() {
		prod := builder.NewProductBuilder().AsNotRentable()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		// no variant, stock or tax expectations: the sale path skips them

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(3, 2).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.True(res.DowngradedToSale)
		s.Equal("sale", string(res.Kind))
		s.Nil(res.VariantID)
		s.Nil(res.Unit)
		s.Equal(3.0, res.BilledQty)
		s.Equal(1500.0, res.UnitPrice)
	})

	s.Run("success: plain sale request never resolves a variant", func() {
		prod := builder.NewProductBuilder()

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithKind("sale").WithoutUnit().WithQty(2, 0).BuildDomain()
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.False(res.DowngradedToSale)
		s.Nil(res.VariantID)
		s.Equal(2.0, res.BilledQty)
		s.Equal(1500.0, res.UnitPrice)
	})
}

func (s *RentalLineUseCaseTestSuite) TestQuoteTaxFixup() {
	s.Run("success: differing line taxes strip the included portion", func() {
		prod := builder.NewProductBuilder()
		variant := prod.BuildVariantReadModel(timeunit.KindDay)
		includedTax := &readmodel.TaxRM{ID: uuid.New(), Name: "VAT 21% incl.", Percent: 21, PriceInclude: true}
		lineTax := &readmodel.TaxRM{ID: uuid.New(), Name: "VAT 0%", Percent: 0}

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)
		s.expectStock(prod.ID, 10)
		s.mockTaxes.EXPECT().TaxesForVariant(gomock.Any(), variant.ID).
			Return([]*readmodel.TaxRM{includedTax}, nil)
		s.mockTaxes.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{lineTax.ID}).
			Return([]*readmodel.TaxRM{lineTax}, nil)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).WithQty(1, 1).BuildDomain()
		req.LineTaxIDs = []uuid.UUID{lineTax.ID}
		res, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().NoError(err)
		s.Equal(82.64, res.UnitPrice)
	})
}

func (s *RentalLineUseCaseTestSuite) TestQuoteErrors() {
	s.Run("error: unknown product maps to the not-found sentinel", func() {
		productID := uuid.New()
		s.mockProducts.EXPECT().FindByID(gomock.Any(), productID).
			Return(nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound))

		req := builder.NewRentalLineBuilder().ForProduct(productID).BuildDomain()
		_, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrProductNotFound))
	})

	s.Run("error: negative quantity fails validation before any read", func() {
		req := builder.NewRentalLineBuilder().WithQty(-1, 1).BuildDomain()
		_, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("error: rental service without a rented product", func() {
		prod := builder.NewProductBuilder()
		variant := prod.BuildVariantReadModel(timeunit.KindDay)
		variant.RentedProductID = nil

		s.mockProducts.EXPECT().FindByID(gomock.Any(), prod.ID).Return(prod.BuildReadModel(), nil)
		s.mockVariants.EXPECT().FindByID(gomock.Any(), variant.ID).Return(variant, nil)

		req := builder.NewRentalLineBuilder().ForProduct(prod.ID).BuildDomain()
		_, err := s.useCase.Quote(context.Background(), req, commands.TriggerProduct)

		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrMissingRentalService))
	})
}
