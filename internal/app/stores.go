package app

import (
	"github.com/openslp/trialtrack-backend/internal/kv"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type Stores struct {
	Clients  store.ClientStore
	Goals    store.GoalStore
	Sessions store.SessionStore
	Settings store.SettingsStore
	Backup   store.BackupStore
}

func wireStores(kvs kv.Store, log *logger.Logger, defaults types.AppSettings) Stores {
	log.Info("Wiring stores...")
	return Stores{
		Clients:  store.NewClientStore(kvs, log),
		Goals:    store.NewGoalStore(kvs, log),
		Sessions: store.NewSessionStore(kvs, log),
		Settings: store.NewSettingsStore(kvs, log, defaults),
		Backup:   store.NewBackupStore(kvs, log),
	}
}
