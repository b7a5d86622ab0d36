// Package crud provides a generic REST resource facade over a typed store.
// It covers the plain list/get/create/update/delete shape that dashboard
// resources share, so each one does not repeat the same handler plumbing.
package crud

import (
	"context"

	"github.com/gin-gonic/gin"

	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
)

// Store Backing operations for one resource type M.
// Get returns a not-found application error when the ID does not exist;
// Update receives the full model with the ID already set.
type Store[M any] interface {
	List(ctx context.Context, skip, limit int) ([]M, error)
	Get(ctx context.Context, id int64) (M, error)
	Create(ctx context.Context, m M) (M, error)
	Update(ctx context.Context, m M) (M, error)
	Delete(ctx context.Context, id int64) error
}

// Handler Generic handlers for a resource.
// M is the model, C the creation payload, U the partial update payload
// and R the response representation.
type Handler[M any, C any, U any, R any] struct {
	store       Store[M]
	fromCreate  func(*C) M
	applyUpdate func(M, *U) M
	toResponse  func(M) R

	defaultLimit int
	maxLimit     int
}

// NewHandler Create a resource handler from a store and its converters
func NewHandler[M any, C any, U any, R any](
	store Store[M],
	fromCreate func(*C) M,
	applyUpdate func(M, *U) M,
	toResponse func(M) R,
) *Handler[M, C, U, R] {
	return &Handler[M, C, U, R]{
		store:        store,
		fromCreate:   fromCreate,
		applyUpdate:  applyUpdate,
		toResponse:   toResponse,
		defaultLimit: 20,
		maxLimit:     200,
	}
}

// Register Mount the five standard routes on a group
func (h *Handler[M, C, U, R]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List GET "" with skip/limit paging
func (h *Handler[M, C, U, R]) List(c *gin.Context) {
	skip := util.ParseSkip(c.Query("skip"))
	limit := util.ClampLimit(c.Query("limit"), h.defaultLimit, h.maxLimit)

	models, err := h.store.List(c, skip, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}

	result := make([]R, 0, len(models))
	for _, m := range models {
		result = append(result, h.toResponse(m))
	}
	response.Success(c, result)
}

// Get GET /:id
func (h *Handler[M, C, U, R]) Get(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid id")
		return
	}

	m, err := h.store.Get(c, id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, h.toResponse(m))
}

// Create POST ""
func (h *Handler[M, C, U, R]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	m, err := h.store.Create(c, h.fromCreate(&req))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, h.toResponse(m))
}

// Update PUT /:id, partial semantics via applyUpdate
func (h *Handler[M, C, U, R]) Update(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid id")
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	m, err := h.store.Get(c, id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	m, err = h.store.Update(c, h.applyUpdate(m, &req))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, h.toResponse(m))
}

// Delete DELETE /:id
func (h *Handler[M, C, U, R]) Delete(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid id")
		return
	}

	if _, err := h.store.Get(c, id); err != nil {
		response.Fail(c, err)
		return
	}
	if err := h.store.Delete(c, id); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
