package app

import (
	"github.com/gin-gonic/gin"

	"github.com/openslp/trialtrack-backend/internal/config"
	"github.com/openslp/trialtrack-backend/internal/handlers"
	"github.com/openslp/trialtrack-backend/internal/middleware"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/server"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Client   *handlers.ClientHandler
	Goal     *handlers.GoalHandler
	Session  *handlers.SessionHandler
	Settings *handlers.SettingsHandler
	Backup   *handlers.BackupHandler
	Report   *handlers.ReportHandler
}

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireHandlers(services Services) Handlers {
	return Handlers{
		Auth:     handlers.NewAuthHandler(services.Auth),
		Client:   handlers.NewClientHandler(services.Clients),
		Goal:     handlers.NewGoalHandler(services.Goals),
		Session:  handlers.NewSessionHandler(services.Sessions),
		Settings: handlers.NewSettingsHandler(services.Settings),
		Backup:   handlers.NewBackupHandler(services.Backup),
		Report:   handlers.NewReportHandler(services.Report),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(cfg *config.Config, h Handlers, mw Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:     h.Auth,
		AuthMiddleware:  mw.Auth,
		ClientHandler:   h.Client,
		GoalHandler:     h.Goal,
		SessionHandler:  h.Session,
		SettingsHandler: h.Settings,
		BackupHandler:   h.Backup,
		ReportHandler:   h.Report,
		AllowOrigins:    cfg.AllowOrigins,
	})
}
