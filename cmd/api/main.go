package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"lumiere_go/internal/api/mgt"
	v1 "lumiere_go/internal/api/v1"
	"lumiere_go/internal/core/config"
	"lumiere_go/internal/core/database"
	"lumiere_go/internal/core/logger"
	"lumiere_go/internal/core/snowflake"
	"lumiere_go/internal/middleware"
	"lumiere_go/internal/model"
	"lumiere_go/internal/pkg/crud"
	"lumiere_go/internal/repository"
	"lumiere_go/internal/service"
	"lumiere_go/internal/service/seo"
)

func main() {
	// 1. Load configuration (Viper)
	if err := config.Init("."); err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	// 2. Logger
	if err := logger.Init(&cfg.Logging); err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting lumiere_go...")

	// 3. MySQL
	if err := database.Init(&cfg.Database); err != nil {
		logger.Error("Failed to init database", logger.Err(err))
		os.Exit(1)
	}
	defer database.Close()

	// 4. Redis (L2 cache + stats cache)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer redisClient.Close()

	// 5. Snowflake IDs
	if err := snowflake.Init(&cfg.Snowflake); err != nil {
		logger.Error("Failed to init snowflake", logger.Err(err))
		os.Exit(1)
	}

	// 6. Repositories
	userRepo := repository.NewUserRepository(database.Get())
	articleRepo := repository.NewArticleRepository(database.Get())
	spotRepo := repository.NewSpotRepository(database.Get())
	commentRepo := repository.NewCommentRepository(database.Get())
	newsletterRepo := repository.NewNewsletterRepository(database.Get())

	// 7. Services
	userSvc := service.NewUserService(userRepo, &cfg.JWT)
	articleSvc := service.NewArticleService(articleRepo, userRepo)
	spotSvc, err := service.NewSpotService(spotRepo, redisClient, &cfg.Cache)
	if err != nil {
		logger.Error("Failed to init spot cache", logger.Err(err))
		os.Exit(1)
	}
	commentSvc := service.NewCommentService(commentRepo, articleRepo)
	newsletterSvc := service.NewNewsletterService(newsletterRepo)
	adminSvc := service.NewAdminService(articleRepo, spotRepo, commentRepo, newsletterRepo, redisClient)

	// 8. Handlers
	articleV1 := v1.NewArticleHandler(articleSvc, commentSvc)
	spotV1 := v1.NewSpotHandler(spotSvc)
	authV1 := v1.NewAuthHandler(userSvc, newsletterSvc)

	adminMgt := mgt.NewAdminHandler(adminSvc)
	articleMgt := mgt.NewArticleHandler(articleSvc, adminSvc)
	commentMgt := mgt.NewCommentHandler(commentSvc, adminSvc)
	userMgt := mgt.NewUserHandler(userSvc)
	spotMgt := mgt.NewSpotHandler(spotSvc, adminSvc)

	subscriberCrud := crud.NewHandler[*model.Newsletter](
		service.NewSubscriberStore(newsletterRepo),
		service.NewsletterFromSubscribe,
		service.ApplySubscriberUpdate,
		service.SubscriberToResponse,
	)

	// 9. SEO
	baseURL := cfg.App.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.App.Port)
	}
	sitemapSvc := seo.NewSitemapService(articleRepo, spotRepo, &seo.SitemapConfig{
		BaseURL:  baseURL,
		CacheTTL: time.Duration(cfg.SEO.SitemapTTL) * time.Second,
		MaxURLs:  cfg.SEO.SitemapMaxURLs,
	})
	sitemapHandler := seo.NewHandler(sitemapSvc)
	robotsSvc := seo.NewRobotsService(baseURL)

	// 10. Router
	gin.SetMode(cfg.App.Mode)
	router := gin.New()

	router.Use(middleware.RecoveryMW())
	router.Use(middleware.LoggerMW())
	router.Use(middleware.CORSMW(&cfg.Security.CORS))
	router.Use(middleware.RateLimitMW(cfg.Security.RateLimit))

	auth := middleware.AuthMW(&cfg.JWT)
	optionalAuth := middleware.OptionalAuthMW(&cfg.JWT)
	admin := middleware.AdminMW()

	// Root
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    "lumiere_go",
			"status":  "running",
			"version": "1.0.0",
		})
	})

	// Health check, probes MySQL and Redis
	router.GET("/api/health", func(c *gin.Context) {
		status := "ok"
		checks := make(map[string]string)

		if err := database.Ping(); err != nil {
			status = "error"
			checks["mysql"] = err.Error()
		} else {
			checks["mysql"] = "ok"
		}

		if err := redisClient.Ping(c.Request.Context()).Err(); err != nil {
			status = "error"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}

		code := 200
		if status != "ok" {
			code = 503
		}
		c.JSON(code, gin.H{
			"status":    status,
			"checks":    checks,
			"timestamp": time.Now().Unix(),
		})
	})

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// SEO
	router.GET("/robots.txt", robotsSvc.Robots)
	router.GET("/sitemap.xml", sitemapHandler.Sitemap)

	// Articles
	articles := router.Group("/api/articles")
	{
		articles.GET("", articleV1.List)
		articles.GET("/:id", articleV1.Get)
		articles.GET("/slug/:slug", articleV1.GetBySlug)
		articles.POST("", auth, articleV1.Create)
		articles.PUT("/:id", auth, articleV1.Update)
		articles.DELETE("/:id", auth, admin, articleMgt.Delete)

		articles.GET("/:id/comments", optionalAuth, articleV1.ListComments)
		articles.POST("/:id/comments", auth, articleV1.CreateComment)
	}

	// Photo spots, mutations are admin operations
	spots := router.Group("/api/spots")
	{
		spots.GET("", spotV1.List)
		spots.GET("/:id", spotV1.Get)
		spots.POST("", auth, admin, spotMgt.Create)
		spots.PUT("/:id", auth, admin, spotMgt.Update)
		spots.DELETE("/:id", auth, admin, spotMgt.Delete)
	}

	// Auth and newsletter
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/token", authV1.Token)
		authGroup.POST("/register", authV1.Register)
		authGroup.GET("/me", auth, authV1.Me)
		authGroup.POST("/newsletter/subscribe", authV1.Subscribe)
	}

	// Dashboard
	adminGroup := router.Group("/api/admin", auth, admin)
	{
		adminGroup.GET("/stats", adminMgt.Stats)

		adminGroup.GET("/articles", articleMgt.List)
		adminGroup.POST("/articles/bulk-delete", articleMgt.BulkDelete)

		adminGroup.GET("/comments", commentMgt.List)
		adminGroup.POST("/comments/:id/approve", commentMgt.Approve)
		adminGroup.DELETE("/comments/:id", commentMgt.Delete)
		adminGroup.POST("/comments/bulk-delete", commentMgt.BulkDelete)

		adminGroup.GET("/users", userMgt.List)
		adminGroup.GET("/users/:id", userMgt.Get)
		adminGroup.PUT("/users/:id", userMgt.Update)
		adminGroup.POST("/users/:id/toggle-admin", userMgt.ToggleAdmin)
		adminGroup.DELETE("/users/:id", userMgt.Delete)

		subscriberCrud.Register(adminGroup.Group("/subscribers"))
	}

	// 11. HTTP server
	srv := &http.Server{
		Addr:    cfg.App.GetServerAddr(),
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server error", logger.Err(err))
		}
	}()

	// pprof server for profiling
	go func() {
		logger.Info("PProf server starting", logger.String("addr", "localhost:6060"))
		if err := http.ListenAndServe("localhost:6060", nil); err != nil && err != http.ErrServerClosed {
			logger.Error("PProf server error", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	database.Close()
	redisClient.Close()
	logger.Sync()

	logger.Info("Server exited gracefully")
}
