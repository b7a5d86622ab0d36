package v1

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/middleware"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/service"
)

// ArticleHandler Public article endpoints
type ArticleHandler struct {
	svc        *service.ArticleService
	commentSvc *service.CommentService
}

// NewArticleHandler Create article handler
func NewArticleHandler(svc *service.ArticleService, commentSvc *service.CommentService) *ArticleHandler {
	return &ArticleHandler{svc: svc, commentSvc: commentSvc}
}

// List GET /api/articles
// Defaults to published articles; an explicit status query selects drafts
// or review items instead.
func (h *ArticleHandler) List(c *gin.Context) {
	status := c.Query("status")
	category := c.Query("category")
	skip := util.ParseSkip(c.Query("skip"))
	limit := util.ClampLimit(c.Query("limit"), 10, 100)

	articles, err := h.svc.List(c.Request.Context(), status, category, skip, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, articles)
}

// Get GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid article id")
		return
	}

	article, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, article)
}

// GetBySlug GET /api/articles/slug/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, article)
}

// Create POST /api/articles, authenticated
func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.ArticleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	article, err := h.svc.Create(c.Request.Context(), middleware.UIDFrom(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, article)
}

// Update PUT /api/articles/:id, author or admin
func (h *ArticleHandler) Update(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req model.ArticleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	article, err := h.svc.Update(c.Request.Context(),
		middleware.UIDFrom(c), middleware.IsAdminFrom(c), id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, article)
}

// ListComments GET /api/articles/:id/comments
// Anonymous callers see approved comments only; an admin token
// (via OptionalAuthMW) reveals pending ones too.
func (h *ArticleHandler) ListComments(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid article id")
		return
	}

	approvedOnly := !middleware.IsAdminFrom(c)
	comments, err := h.commentSvc.ListForArticle(c.Request.Context(), id, approvedOnly)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, comments)
}

// CreateComment POST /api/articles/:id/comments, authenticated.
// The comment stays hidden until moderation approves it.
func (h *ArticleHandler) CreateComment(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid article id")
		return
	}

	var req model.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), id, middleware.UIDFrom(c), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, comment)
}
