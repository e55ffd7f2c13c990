package server

import (
	"fmt"
	"time"

	"github.com/arkamaulana/eventhub/config"
	"github.com/arkamaulana/eventhub/internal/handlers"
	"github.com/arkamaulana/eventhub/internal/metrics"
	"github.com/arkamaulana/eventhub/internal/middleware"
	"github.com/arkamaulana/eventhub/internal/upload"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const requestTimeout = 30 * time.Second

func Start(logger *zap.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	m := metrics.New()
	uploader := upload.New(cfg.UploadDir, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.RequestTimeout(requestTimeout))

	SetupRoutes(r, db, uploader, m, cfg.PublicBaseURL)

	r.Static("/"+upload.Root, cfg.UploadDir)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	logger.Info("Server listening", zap.String("port", cfg.Port))
	return r.Run(":" + cfg.Port)
}

// SetupRoutes registers the single authoritative handler for every route.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploader *upload.Pipeline, m *metrics.Metrics, publicBaseURL string) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.UploadMiddleware(uploader))
	r.Use(middleware.MetricsMiddleware(m))
	r.Use(middleware.PublicBaseURLMiddleware(publicBaseURL))

	api := r.Group("/api")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)
		api.GET("/get-user", middleware.JWTAuthMiddleware(), handlers.GetUser)

		api.POST("/event-files", handlers.UploadEventFiles)
		api.GET("/event-files", handlers.ListEventFiles)

		api.POST("/category", handlers.CreateCategory)
		api.GET("/category", handlers.FindCategories)
		api.GET("/categories/main", handlers.ListMainCategories)
		api.GET("/category/:id", handlers.GetCategory)

		api.POST("/event", handlers.CreateEvent)
		api.GET("/events", handlers.ListEvents)
		api.POST("/filtered-events", handlers.FilterEvents)
		api.GET("/categories-events/:category_id", handlers.ListCategoryEvents)
		api.GET("/event/:id", handlers.GetEvent)
		api.PUT("/event/:id", handlers.UpdateEvent)
		api.DELETE("/event/:id", handlers.DeleteEvent)
	}
}
