package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/openslp/trialtrack-backend/internal/handlers"
	"github.com/openslp/trialtrack-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ClientHandler   *handlers.ClientHandler
	GoalHandler     *handlers.GoalHandler
	SessionHandler  *handlers.SessionHandler
	SettingsHandler *handlers.SettingsHandler
	BackupHandler   *handlers.BackupHandler
	ReportHandler   *handlers.ReportHandler
	AllowOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware("trialtrack"))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5174"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/pair", cfg.AuthHandler.Pair)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	// Clients
	protected.GET("/clients", cfg.ClientHandler.List)
	protected.POST("/clients", cfg.ClientHandler.Create)
	protected.GET("/clients/:id", cfg.ClientHandler.Get)
	protected.PUT("/clients/:id", cfg.ClientHandler.Update)
	protected.DELETE("/clients/:id", cfg.ClientHandler.Delete)
	protected.GET("/clients/:id/goals", cfg.GoalHandler.ListByClient)
	protected.GET("/clients/:id/sessions", cfg.SessionHandler.ListByClient)
	protected.GET("/clients/:id/progress", cfg.ReportHandler.ClientProgress)
	// Goals
	protected.POST("/goals", cfg.GoalHandler.Create)
	protected.GET("/goals/:id", cfg.GoalHandler.Get)
	protected.PUT("/goals/:id", cfg.GoalHandler.Update)
	protected.PATCH("/goals/:id/status", cfg.GoalHandler.UpdateStatus)
	protected.DELETE("/goals/:id", cfg.GoalHandler.Delete)
	protected.GET("/goals/:id/sessions", cfg.SessionHandler.ListByGoal)
	// Sessions
	protected.POST("/sessions", cfg.SessionHandler.Record)
	protected.GET("/sessions/:id", cfg.SessionHandler.Get)
	protected.DELETE("/sessions/:id", cfg.SessionHandler.Delete)
	protected.GET("/sessions/:id/stats", cfg.ReportHandler.SessionStats)
	// Settings
	protected.GET("/settings", cfg.SettingsHandler.Get)
	protected.PUT("/settings", cfg.SettingsHandler.Update)
	protected.POST("/settings/reset", cfg.SettingsHandler.Reset)
	// Backup
	protected.GET("/backup/export", cfg.BackupHandler.Export)
	protected.POST("/backup/import", cfg.BackupHandler.Import)
	protected.POST("/backup/clear", cfg.BackupHandler.Clear)
	// State
	protected.POST("/state/refresh", cfg.BackupHandler.Refresh)

	return router
}
