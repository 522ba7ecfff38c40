package services

import (
	"context"

	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type SettingsService interface {
	Get(ctx context.Context) types.AppSettings
	Update(ctx context.Context, settings types.AppSettings) (types.AppSettings, error)
	Reset(ctx context.Context) (types.AppSettings, error)
}

type settingsService struct {
	log      *logger.Logger
	settings store.SettingsStore
	mirror   *state.Mirror
}

func NewSettingsService(log *logger.Logger, settings store.SettingsStore, mirror *state.Mirror) SettingsService {
	return &settingsService{
		log:      log.With("service", "SettingsService"),
		settings: settings,
		mirror:   mirror,
	}
}

func (st *settingsService) Get(_ context.Context) types.AppSettings {
	return st.mirror.Settings()
}

func (st *settingsService) Update(ctx context.Context, settings types.AppSettings) (types.AppSettings, error) {
	settings.Clamp()
	if err := st.settings.Save(ctx, settings); err != nil {
		return types.AppSettings{}, err
	}
	st.mirror.PutSettings(settings)
	return settings, nil
}

func (st *settingsService) Reset(ctx context.Context) (types.AppSettings, error) {
	settings, err := st.settings.Reset(ctx)
	if err != nil {
		return types.AppSettings{}, err
	}
	st.mirror.PutSettings(settings)
	st.log.Info("settings reset to defaults")
	return settings, nil
}
