package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/oretina/assettrack/internal/config"
	"github.com/oretina/assettrack/internal/middleware"
	"github.com/oretina/assettrack/pkg/cache"

	assetHttp "github.com/oretina/assettrack/internal/modules/asset/delivery/http"
	assetRepo "github.com/oretina/assettrack/internal/modules/asset/repository"
	assetService "github.com/oretina/assettrack/internal/modules/asset/service"

	maintenanceHttp "github.com/oretina/assettrack/internal/modules/maintenance/delivery/http"
	maintenanceRepo "github.com/oretina/assettrack/internal/modules/maintenance/repository"
	maintenanceService "github.com/oretina/assettrack/internal/modules/maintenance/service"

	dashboardHttp "github.com/oretina/assettrack/internal/modules/dashboard/delivery/http"
	dashboardRepo "github.com/oretina/assettrack/internal/modules/dashboard/repository"
	dashboardService "github.com/oretina/assettrack/internal/modules/dashboard/service"

	userHttp "github.com/oretina/assettrack/internal/modules/user/delivery/http"
	userRepo "github.com/oretina/assettrack/internal/modules/user/repository"
	userService "github.com/oretina/assettrack/internal/modules/user/service"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	users := userRepo.NewUserRepository(db)
	userSvc := userService.NewUserService(users, cfg.JWTSecret, cfg.TokenTTL)
	authHandler := userHttp.NewAuthHandler(userSvc)
	userHandler := userHttp.NewUserHandler(userSvc)

	assets := assetRepo.NewAssetRepository(db)
	assetSvc := assetService.NewAssetService(assets)
	assetHandler := assetHttp.NewAssetHandler(assetSvc)

	maintenance := maintenanceRepo.NewMaintenanceRepository(db)
	maintenanceSvc := maintenanceService.NewMaintenanceService(maintenance, assets)
	maintenanceHandler := maintenanceHttp.NewMaintenanceHandler(maintenanceSvc)

	dashboards := dashboardRepo.NewDashboardRepository(db)
	dashboardSvc := dashboardService.NewDashboardService(dashboards, maintenanceSvc)
	dashboardHandler := dashboardHttp.NewDashboardHandler(dashboardSvc)

	limiter := cache.NewRateLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitMax)
	responseCache := cache.NewResponseCache(redisClient, cfg.CacheTTL)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	setupCORS(router, cfg.AllowedOrigins)
	router.Use(middleware.RateLimit(limiter))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Asset Tracking API",
			"version": "1.0.0",
			"status":  "running",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)

	api := router.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Everything else requires a verified bearer token.
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/auth/verify", authHandler.Verify)
		protected.POST("/auth/verify", authHandler.Verify)

		protected.GET("/assets", assetHandler.List)
		protected.GET("/assets/:id", assetHandler.GetByID)
		protected.POST("/assets", assetHandler.Create)
		protected.PUT("/assets/:id", assetHandler.Update)
		protected.DELETE("/assets/:id", assetHandler.Delete)
		protected.GET("/assets/search/:query", assetHandler.Search)
		protected.PUT("/assets/:id/assign", assetHandler.Assign)
		protected.PUT("/assets/:id/unassign", assetHandler.Unassign)

		manageRoles := authMiddleware.RequireRoles("ADMIN", "MANAGER")
		adminOnly := authMiddleware.RequireRoles("ADMIN")

		protected.GET("/maintenance", maintenanceHandler.ListAll)
		protected.GET("/maintenance/asset/:assetId", maintenanceHandler.ListByAsset)
		protected.GET("/maintenance/range", maintenanceHandler.ListByDateRange)
		protected.POST("/maintenance/:assetId", manageRoles, maintenanceHandler.Schedule)
		protected.PUT("/maintenance/:id", manageRoles, maintenanceHandler.Update)
		protected.PUT("/maintenance/:id/complete", manageRoles, maintenanceHandler.Complete)
		protected.DELETE("/maintenance/:id", adminOnly, maintenanceHandler.Delete)
		protected.GET("/maintenance/stats", maintenanceHandler.Stats)
		protected.GET("/maintenance/stats/:assetId", maintenanceHandler.Stats)

		protected.GET("/users", userHandler.List)
		protected.GET("/users/:id", userHandler.GetByID)
		protected.POST("/users", userHandler.Create)
		protected.PUT("/users/:id", userHandler.Update)
		protected.PUT("/users/:id/role", adminOnly, userHandler.UpdateRole)
		protected.POST("/users/:id/change-password", userHandler.ChangePassword)
		protected.DELETE("/users/:id", adminOnly, userHandler.Delete)

		// Dashboard reads are cacheable for a short window.
		dashboard := protected.Group("/dashboard")
		dashboard.Use(middleware.CacheResponse(responseCache))
		{
			dashboard.GET("/stats", dashboardHandler.Stats)
			dashboard.GET("/assets/category", dashboardHandler.AssetsByCategory)
			dashboard.GET("/assets/status", dashboardHandler.AssetsByStatus)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
			"path":  c.Request.URL.Path,
		})
	})

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
