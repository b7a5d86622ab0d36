package mgt

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/middleware"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/pkg/util"
	"lumiere_go/internal/service"
)

// UserHandler Dashboard account management endpoints
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler Create user management handler
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List GET /api/admin/users
func (h *UserHandler) List(c *gin.Context) {
	search := c.Query("search")
	skip := util.ParseSkip(c.Query("skip"))
	limit := util.ClampLimit(c.Query("limit"), 20, 100)

	users, err := h.svc.List(c.Request.Context(), search, skip, limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, users)
}

// Get GET /api/admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, user)
}

// Update PUT /api/admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req model.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	user, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, user)
}

// ToggleAdmin POST /api/admin/users/:id/toggle-admin
// An admin cannot strip their own privileges.
func (h *UserHandler) ToggleAdmin(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid user id")
		return
	}
	if id == middleware.UIDFrom(c) {
		response.BadRequest(c, "cannot change your own admin status")
		return
	}

	user, err := h.svc.ToggleAdmin(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, user)
}

// Delete DELETE /api/admin/users/:id
// Self-deletion is rejected.
func (h *UserHandler) Delete(c *gin.Context) {
	id := util.ParseID(c.Param("id"))
	if id == 0 {
		response.BadRequest(c, "invalid user id")
		return
	}
	if id == middleware.UIDFrom(c) {
		response.BadRequest(c, "cannot delete your own account")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Fail(c, err)
		return
	}
	response.SuccessWithMsg(c, nil, "user deleted")
}
