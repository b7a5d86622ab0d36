package mgt

import (
	"time"

	"github.com/gin-gonic/gin"

	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/service"
)

// ArticleHandler Dashboard article endpoints
type ArticleHandler struct {
	svc      *service.ArticleService
	adminSvc *service.AdminService
}

// NewArticleHandler Create dashboard article handler
func NewArticleHandler(svc *service.ArticleService, adminSvc *service.AdminService) *ArticleHandler {
	return &ArticleHandler{svc: svc, adminSvc: adminSvc}
}

// parseDate Accepts a plain date or a full RFC3339 timestamp
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// parseEndDate Like parseDate, but a plain date covers its whole day:
// the returned bound is the following midnight, used exclusively.
func parseEndDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		t = t.Add(24 * time.Hour)
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	return nil
}

// List GET /api/admin/articles
// Any status, filterable by search/status/category/date window,
// returns items plus the total matching count.
func (h *ArticleHandler) List(c *gin.Context) {
	f := model.AdminArticleFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		From:     parseDate(c.Query("date_from")),
		To:       parseEndDate(c.Query("date_to")),
		Skip:     util.ParseSkip(c.Query("skip")),
		Limit:    util.ClampLimit(c.Query("limit"), 20, 100),
	}

	list, err := h.svc.AdminList(c.Request.Context(), f)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, list)
}

// Delete DELETE /api/articles/:id, admin only
func (h *ArticleHandler) Delete(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid article id")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	h.adminSvc.InvalidateStats(c.Request.Context())
	response.SuccessWithMsg(c, nil, "article deleted")
}

// BulkDelete POST /api/admin/articles/bulk-delete
func (h *ArticleHandler) BulkDelete(c *gin.Context) {
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
