package services

import (
	"context"

	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type BackupService interface {
	Export(ctx context.Context) (types.Backup, error)
	Import(ctx context.Context, raw []byte) error
	Clear(ctx context.Context) error
	// Refresh discards the in-memory mirror and reloads every collection
	// from the record store.
	Refresh(ctx context.Context) error
}

type backupService struct {
	log      *logger.Logger
	backup   store.BackupStore
	clients  store.ClientStore
	goals    store.GoalStore
	sessions store.SessionStore
	settings store.SettingsStore
	mirror   *state.Mirror
}

func NewBackupService(log *logger.Logger, backup store.BackupStore, clients store.ClientStore, goals store.GoalStore, sessions store.SessionStore, settings store.SettingsStore, mirror *state.Mirror) BackupService {
	return &backupService{
		log:      log.With("service", "BackupService"),
		backup:   backup,
		clients:  clients,
		goals:    goals,
		sessions: sessions,
		settings: settings,
		mirror:   mirror,
	}
}

func (bs *backupService) Export(ctx context.Context) (types.Backup, error) {
	return bs.backup.Export(ctx)
}

func (bs *backupService) Import(ctx context.Context, raw []byte) error {
	if err := bs.backup.Import(ctx, raw); err != nil {
		return err
	}
	bs.log.Info("backup imported", "bytes", len(raw))
	return bs.Refresh(ctx)
}

func (bs *backupService) Clear(ctx context.Context) error {
	if err := bs.backup.ClearAll(ctx); err != nil {
		return err
	}
	bs.log.Warn("all collections cleared")
	return bs.Refresh(ctx)
}

func (bs *backupService) Refresh(ctx context.Context) error {
	return bs.mirror.Reload(ctx, bs.clients, bs.goals, bs.sessions, bs.settings)
}
