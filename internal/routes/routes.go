package routes

import (
	"log/slog"
	"time"

	handler "dashboard-seed-backend/internal/handlers"
	"dashboard-seed-backend/internal/middleware"
	service "dashboard-seed-backend/internal/services/seeding"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine builds the gin engine with middleware and routes registered.
func NewEngine(seedService *service.SeedService, origins []string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(logger))
	if len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET"},
			AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	RegisterRoutes(r, seedService)
	return r
}

func RegisterRoutes(r *gin.Engine, seedService *service.SeedService) {
	seedHandler := handler.NewSeedHandler(seedService)

	r.GET("/seed", seedHandler.Seed)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
