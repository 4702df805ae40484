package api

import (
	"net/http"

	reqdto "rental-sales-api/internal/handler/dto/request"
	resdto "rental-sales-api/internal/handler/dto/response"
	"rental-sales-api/internal/pkg/errs"
	"rental-sales-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RentalLineHandler struct {
	rentalLineCommands commands.RentalLineCommands
}

func NewRentalLineHandler(rentalLineCommands commands.RentalLineCommands) *RentalLineHandler {
	return &RentalLineHandler{
		rentalLineCommands: rentalLineCommands,
	}
}

// @Summary Quote a rental order line
// @Description Recompute the derived fields of an order line after a field edit
// @Tags rental-lines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Order line state and the edited field"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rental-lines/quote [post]
func (h *RentalLineHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	domainReq, changed, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	result, err := h.rentalLineCommands.Quote(c.Request.Context(), domainReq, changed)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errs.Is(err, errs.ErrVariantNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental service variant not found",
			})
		case errs.Is(err, errs.ErrPriceListNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Price list not found",
			})
		case errs.Is(err, errs.ErrStockLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rental return location not found",
			})
		case errs.Is(err, errs.ErrMaxIntervalDays):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Maximum rental interval exceeded",
			})
		case errs.Is(err, errs.ErrCurrencyMismatch):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Currency does not match the price list",
			})
		case errs.Is(err, errs.ErrMissingRentalService):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Rental service is not linked to a rentable product",
			})
		case errs.Is(err, errs.ErrInvalidRentalDates):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Rental end date is before the start date",
			})
		case errs.Is(err, errs.ErrUnknownTimeUnit):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown rental time unit",
			})
		case errs.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewQuoteResponse(result))
}
