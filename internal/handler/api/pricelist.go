package api

import (
	"net/http"

	"rental-sales-api/internal/infra"
	"rental-sales-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PriceListHandler struct {
	priceListQueries queries.PriceListQueries
}

func NewPriceListHandler(priceListQueries queries.PriceListQueries) *PriceListHandler {
	return &PriceListHandler{
		priceListQueries: priceListQueries,
	}
}

// @Summary Get price list
// @Description Get one price list with its rules
// @Tags pricelists
// @Produce json
// @Security BearerAuth
// @Param id path string true "Price list ID"
// @Success 200 {object} queries.PriceListView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricelists/{id} [get]
func (h *PriceListHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price list ID",
		})
		return
	}

	view, err := h.priceListQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Price list not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}
