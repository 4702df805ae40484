//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rental-sales-api/internal/domain/user"
	"rental-sales-api/internal/handler/api"
	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/queries"
	"rental-sales-api/tests/common/httptest"
	queriesmock "rental-sales-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PriceListHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockPriceListQueries
	handler     *api.PriceListHandler
}

func (s *PriceListHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockPriceListQueries(s.mockCtrl)
	s.handler = api.NewPriceListHandler(s.mockQueries)

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

	s.router.GET("/pricelists/:id", authMiddleware, s.handler.Get)
}

func (s *PriceListHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPriceListHandlerSuite(t *testing.T) {
	suite.Run(t, new(PriceListHandlerTestSuite))
}

func (s *PriceListHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with the price list and its rules", func() {
		view := &queries.PriceListView{
			ID:             uuid.New(),
			Name:           "Construction Rates",
			Currency:       "EUR",
			DiscountPolicy: "with_discount",
			Rules: []queries.PriceRuleView{
				{ID: uuid.New(), MinQuantity: 5, ComputeMode: "fixed", FixedPrice: 80},
			},
		}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricelists/"+view.ID.String(), nil, "bearer-token")

		var body queries.PriceListView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("EUR", body.Currency)
		s.Require().Len(body.Rules, 1)
		s.Equal(80.0, body.Rules[0].FixedPrice)
	})

	s.Run("error: 400 Bad Request on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricelists/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid price list ID")
	})

	s.Run("error: 404 Not Found for unknown price list", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("find price list", errs.New("no rows"), infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricelists/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Price list not found")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pricelists/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
