// Package mgt holds the dashboard endpoints mounted under /api/admin
// plus the admin-guarded mutations on public resources.
package mgt

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/service"
)

// AdminHandler Dashboard aggregate endpoints
type AdminHandler struct {
	svc *service.AdminService
}

// NewAdminHandler Create admin handler
func NewAdminHandler(svc *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, stats)
}
