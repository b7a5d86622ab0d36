package v1

import (
	"github.com/gin-gonic/gin"

	"lumiere_go/internal/middleware"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/response"
	"lumiere_go/internal/service"
)

// AuthHandler Authentication and account endpoints
type AuthHandler struct {
	users      *service.UserService
	newsletter *service.NewsletterService
}

// NewAuthHandler Create auth handler
func NewAuthHandler(users *service.UserService, newsletter *service.NewsletterService) *AuthHandler {
	return &AuthHandler{users: users, newsletter: newsletter}
}

// Token POST /api/auth/token
// Accepts form-encoded or JSON credentials and issues a bearer token.
func (h *AuthHandler) Token(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, token)
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	user, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, user)
}

// Me GET /api/auth/me, authenticated
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), middleware.UIDFrom(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, user)
}

// Subscribe POST /api/auth/newsletter/subscribe
func (h *AuthHandler) Subscribe(c *gin.Context) {
	var req model.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err.Error())
		return
	}

	sub, err := h.newsletter.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Created(c, sub)
}
