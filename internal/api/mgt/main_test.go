package mgt

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"lumiere_go/internal/core/config"
	"lumiere_go/internal/core/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init(&config.LoggingConfig{Level: "error", Mode: "dev"})
	os.Exit(m.Run())
}
