package mgt

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/service"
)

// CommentHandler Moderation endpoints
type CommentHandler struct {
	svc      *service.CommentService
	adminSvc *service.AdminService
}

// NewCommentHandler Create moderation handler
func NewCommentHandler(svc *service.CommentService, adminSvc *service.AdminService) *CommentHandler {
	return &CommentHandler{svc: svc, adminSvc: adminSvc}
}

// List GET /api/admin/comments, approved and pending alike
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.svc.AdminList(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, comments)
}

// Approve POST /api/admin/comments/:id/approve
func (h *CommentHandler) Approve(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.svc.Approve(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	h.adminSvc.InvalidateStats(c.Request.Context())
	response.SuccessWithMsg(c, nil, "comment approved")
}

// Delete DELETE /api/admin/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	h.adminSvc.InvalidateStats(c.Request.Context())
	response.SuccessWithMsg(c, nil, "comment deleted")
}

// BulkDelete POST /api/admin/comments/bulk-delete
func (h *CommentHandler) BulkDelete(c *gin.Context) {
	var req model.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	deleted, err := h.svc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.adminSvc.InvalidateStats(c.Request.Context())
	response.Success(c, model.BulkDeleteResponse{DeletedCount: deleted})
}
