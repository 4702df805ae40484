//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rental-sales-api/internal/domain/rentalline"
	"rental-sales-api/internal/domain/timeunit"
	"rental-sales-api/internal/domain/user"
	"rental-sales-api/internal/handler/api"
	resdto "rental-sales-api/internal/handler/dto/response"
	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/commands"
	"rental-sales-api/tests/common/builder"
	"rental-sales-api/tests/common/httptest"
	"rental-sales-api/tests/common/testutil"
	commandsmock "rental-sales-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RentalLineHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRentalLineCommands
	handler      *api.RentalLineHandler
}

func (s *RentalLineHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRentalLineCommands(s.mockCtrl)
	s.handler = api.NewRentalLineHandler(s.mockCommands)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleSales)
		c.Next()
	}

	s.router.POST("/rental-lines/quote", authMiddleware, s.handler.Quote)
}

func (s *RentalLineHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRentalLineHandlerSuite(t *testing.T) {
	suite.Run(t, new(RentalLineHandlerTestSuite))
}

type testCaseQuote struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *RentalLineHandlerTestSuite) quoteResult() *commands.QuoteResult {
	unit := timeunit.KindDay
	variantID := uuid.New()
	priceListID := uuid.New()
	return &commands.QuoteResult{
		Kind:              rentalline.KindNewRental,
		VariantID:         &variantID,
		VariantName:       "Scaffolding Tower (Day)",
		Unit:              &unit,
		NumberOfTimeUnits: 3,
		RentalQty:         2,
		BilledQty:         6,
		UnitPrice:         100,
		Currency:          "EUR",
		PriceListID:       &priceListID,
	}
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *RentalLineHandlerTestSuite) TestQuote() {
	url := "/rental-lines/quote"

	reqBody := builder.NewRentalLineBuilder().WithQty(2, 3).BuildQuoteDTO()

	s.Run("success: returns 200 OK with the derived line fields", func() {
		expected := s.quoteResult()
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), commands.TriggerProduct).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("new_rental", body.Kind)
		s.False(body.DowngradedToSale)
		s.Require().NotNil(body.Unit)
		s.Equal("day", *body.Unit)
		s.Equal(3.0, body.NumberOfTimeUnits)
		s.Equal(2.0, body.RentalQty)
		s.Equal(6.0, body.BilledQty)
		s.Equal(100.0, body.UnitPrice)
		s.Equal("EUR", body.Currency)
		s.Equal(expected.VariantID, body.VariantID)
		s.Equal(expected.PriceListID, body.PriceListID)
		s.Nil(body.RuleID)
		s.Nil(body.StockWarning)
	})

	s.Run("success: surfaces the stock warning without failing the quote", func() {
		expected := s.quoteResult()
		expected.StockWarning = &rentalline.StockWarning{
			RequestedQty: 5,
			AvailableQty: 4,
			UnitName:     "Day(s)",
			LocationName: "Rental In",
		}
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.StockWarning)
		s.Contains(*body.StockWarning, "Rental In")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseQuote{
			{name: "missing field: product_id (required)", mutate: testutil.Field("product_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: kind (required)", mutate: testutil.Field("kind", nil), expectCode: http.StatusBadRequest},
			{name: "invalid kind", mutate: testutil.Field("kind", "lease"), expectCode: http.StatusBadRequest},
			{name: "invalid unit", mutate: testutil.Field("unit", "week"), expectCode: http.StatusBadRequest},
			{name: "unit omitted OK", mutate: testutil.Field("unit", nil), expectCode: http.StatusOK},
			{name: "kind boundary OK (sell_rental)", mutate: testutil.Field("kind", "sell_rental"), expectCode: http.StatusOK},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusOK {
					s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(s.quoteResult(), nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusOK {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not an object", "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "product not found",
				commandsError:  errs.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "variant not found",
				commandsError:  errs.ErrVariantNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rental service variant not found",
			},
			{
				name:           "price list not found",
				commandsError:  errs.ErrPriceListNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Price list not found",
			},
			{
				name:           "stock location not found",
				commandsError:  errs.ErrStockLocationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Rental return location not found",
			},
			{
				name:           "interval limit exceeded",
				commandsError:  errs.Mark(errs.New("45 days requested"), errs.ErrMaxIntervalDays),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Maximum rental interval exceeded",
			},
			{
				name:           "currency mismatch",
				commandsError:  errs.ErrCurrencyMismatch,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Currency does not match the price list",
			},
			{
				name:           "missing rental service",
				commandsError:  errs.ErrMissingRentalService,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Rental service is not linked",
			},
			{
				name:           "inverted rental dates",
				commandsError:  errs.ErrInvalidRentalDates,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Rental end date is before the start date",
			},
			{
				name:           "unknown time unit",
				commandsError:  errs.ErrUnknownTimeUnit,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Unknown rental time unit",
			},
			{
				name:           "domain validation failure",
				commandsError:  errs.Mark(errs.New("negative quantity"), errs.ErrDomainValidation),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errs.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
