// Geo HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orendahub/go-rental-backend/internal/utils"
)

// SearchSettlements godoc
// @ID          searchSettlements
// @Summary     Search settlements
// @Description Case-insensitive substring search over the Ukrainian settlements dataset (Latin, Ukrainian, and alternate names). An empty query yields an empty result.
// @Tags        Geo
// @Produce     json
//
// @Param       q      query  string  false  "Search term"  example(київ)
// @Param       limit  query  int     false  "Maximum results"  minimum(1) maximum(100) default(20)
//
// @Success     200  {array}   geo.Settlement
// @Router      /geo/settlements [get]
func (h *Handlers) SearchSettlements(c *gin.Context) {
	q := c.Query("q")
	limit := utils.AtoiDefault(c.Query("limit"), 0)
	ok(c, http.StatusOK, h.geoIdx.Search(q, limit))
}
