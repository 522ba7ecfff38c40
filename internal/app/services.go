package app

import (
	"github.com/openslp/trialtrack-backend/internal/config"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/services"
	"github.com/openslp/trialtrack-backend/internal/state"
)

type Services struct {
	Auth      services.AuthService
	Clients   services.ClientService
	Goals     services.GoalService
	Sessions  services.SessionService
	Settings  services.SettingsService
	Backup    services.BackupService
	Report    services.ReportService
	Reconcile services.ReconcileService
}

func wireServices(log *logger.Logger, cfg *config.Config, stores Stores, mirror *state.Mirror, passcodeHash []byte) Services {
	log.Info("Wiring services...")
	goalService := services.NewGoalService(log, stores.Goals, stores.Clients, mirror)
	return Services{
		Auth:      services.NewAuthService(log, passcodeHash, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Clients:   services.NewClientService(log, stores.Clients, stores.Goals, stores.Sessions, mirror),
		Goals:     goalService,
		Sessions:  services.NewSessionService(log, stores.Sessions, stores.Clients, goalService, mirror),
		Settings:  services.NewSettingsService(log, stores.Settings, mirror),
		Backup:    services.NewBackupService(log, stores.Backup, stores.Clients, stores.Goals, stores.Sessions, stores.Settings, mirror),
		Report:    services.NewReportService(log, stores.Sessions, mirror),
		Reconcile: services.NewReconcileService(log, stores.Clients, stores.Goals, stores.Sessions),
	}
}
