package mgt

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/service"
)

// SpotHandler Admin-guarded photo spot mutations.
// Reads stay public; creation and edits are dashboard operations.
type SpotHandler struct {
	svc      *service.SpotService
	adminSvc *service.AdminService
}

// NewSpotHandler Create spot mutation handler
func NewSpotHandler(svc *service.SpotService, adminSvc *service.AdminService) *SpotHandler {
	return &SpotHandler{svc: svc, adminSvc: adminSvc}
}

// Create POST /api/spots
func (h *SpotHandler) Create(c *gin.Context) {
	var req model.SpotCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	spot, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.adminSvc.InvalidateStats(c.Request.Context())
	response.Created(c, spot)
}

// Update PUT /api/spots/:id
func (h *SpotHandler) Update(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid spot id")
		return
	}

	var req model.SpotUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	spot, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, spot)
}

// Delete DELETE /api/spots/:id
func (h *SpotHandler) Delete(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid spot id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	h.adminSvc.InvalidateStats(c.Request.Context())
	response.SuccessWithMsg(c, nil, "spot deleted")
}
