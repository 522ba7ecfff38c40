package store

import (
	"context"

	"github.com/openslp/trialtrack-backend/internal/kv"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type SettingsStore interface {
	// Get returns the persisted settings, or the configured defaults when
	// nothing has been saved yet.
	Get(ctx context.Context) (types.AppSettings, error)
	Save(ctx context.Context, settings types.AppSettings) error
	// Reset restores the configured defaults as the persisted record.
	Reset(ctx context.Context) (types.AppSettings, error)
}

type settingsStore struct {
	kv       kv.Store
	log      *logger.Logger
	defaults types.AppSettings
}

func NewSettingsStore(kvs kv.Store, baseLog *logger.Logger, defaults types.AppSettings) SettingsStore {
	return &settingsStore{kv: kvs, log: baseLog.With("store", "SettingsStore"), defaults: defaults}
}

func (st *settingsStore) Get(ctx context.Context) (types.AppSettings, error) {
	settings := st.defaults
	if err := readDoc(ctx, st.kv, st.log, settingsKey, &settings); err != nil {
		return st.defaults, err
	}
	settings.Clamp()
	return settings, nil
}

func (st *settingsStore) Save(ctx context.Context, settings types.AppSettings) error {
	return writeDoc(ctx, st.kv, settingsKey, settings)
}

func (st *settingsStore) Reset(ctx context.Context) (types.AppSettings, error) {
	if err := writeDoc(ctx, st.kv, settingsKey, st.defaults); err != nil {
		return types.AppSettings{}, err
	}
	return st.defaults, nil
}
