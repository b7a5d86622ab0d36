package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"lumiere_go/internal/core/config"
	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/pkg/response"
)

// Context keys set by AuthMW
const (
	CtxUID      = "uid"
	CtxUsername = "username"
	CtxIsAdmin  = "is_admin"
)

// LoggerMW Request logging middleware
func LoggerMW() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.Info("request",
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.String("query", query),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		)
	}
}

// RecoveryMW Panic recovery middleware
func RecoveryMW() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					logger.String("error", fmt.Sprintf("%v", err)),
					logger.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(500, gin.H{
					"code": 500,
					"msg":  "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// CORSMW Cross-origin middleware, driven by config
func CORSMW(cfg *config.CORSConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	methods := strings.Join(cfg.AllowedMethods, ", ")
	headers := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := len(cfg.AllowedOrigins) == 0
		for _, o := range cfg.AllowedOrigins {
			if o == origin || o == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			if origin != "" {
				c.Header("Access-Control-Allow-Origin", origin)
			} else if !cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Origin", "*")
			}
		}
		c.Header("Access-Control-Allow-Methods", methods)
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Credentials", fmt.Sprintf("%t", cfg.AllowCredentials))
		c.Header("Access-Control-Max-Age", fmt.Sprintf("%d", cfg.MaxAge))

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// UserClaims JWT claims carried by every bearer token
type UserClaims struct {
	UID      int64  `json:"uid"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// AuthMW Bearer token guard. Missing/invalid/expired tokens abort with 401.
func AuthMW(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "invalid token format: missing 'Bearer ' prefix")
			c.Abort()
			return
		}

		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "), cfg.Secret)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUID, claims.UID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// OptionalAuthMW Bearer token middleware for public routes.
// A valid token populates the caller identity, anything else passes
// through anonymously.
func OptionalAuthMW(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			if claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "), cfg.Secret); err == nil {
				c.Set(CtxUID, claims.UID)
				c.Set(CtxUsername, claims.Username)
				c.Set(CtxIsAdmin, claims.IsAdmin)
			}
		}
		c.Next()
	}
}

// AdminMW Admin guard, composed after AuthMW. Non-admin identities abort with 403.
func AdminMW() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdminFrom(c) {
			response.Forbidden(c, "admin privileges required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GenerateToken Issue a signed HS256 bearer token
func GenerateToken(uid int64, username string, isAdmin bool, cfg *config.JWTConfig) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UID:      uid,
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Expiry) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "lumiere",
			Subject:   fmt.Sprintf("%d", uid),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken Verify signature and expiry, return the claims
func ParseToken(tokenString, secret string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// UIDFrom Caller identity from context, 0 when anonymous
func UIDFrom(c *gin.Context) int64 {
	if v, exists := c.Get(CtxUID); exists {
		if uid, ok := v.(int64); ok {
			return uid
		}
	}
	return 0
}

// IsAdminFrom Caller admin flag from context
func IsAdminFrom(c *gin.Context) bool {
	if v, exists := c.Get(CtxIsAdmin); exists {
		if isAdmin, ok := v.(bool); ok {
			return isAdmin
		}
	}
	return false
}
