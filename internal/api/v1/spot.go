package v1

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/service"
)

// SpotHandler Public photo spot endpoints
type SpotHandler struct {
	svc *service.SpotService
}

// NewSpotHandler Create spot handler
func NewSpotHandler(svc *service.SpotService) *SpotHandler {
	return &SpotHandler{svc: svc}
}

// List GET /api/spots
// search matches spot name or location, best rated first.
func (h *SpotHandler) List(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")
	skip := util.ParseSkip(c.Query("skip"))
	limit := util.ClampLimit(c.Query("limit"), 100, 500)

	spots, err := h.svc.List(c.Request.Context(), category, search, skip, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, spots)
}

// Get GET /api/spots/:id
func (h *SpotHandler) Get(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid spot id")
		return
	}

	spot, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, spot)
}
