package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/openslp/trialtrack-backend/internal/types"
)

// settingsDefaultsFile is the YAML shape of a deployment's settings
// overrides. Every field is optional; unset fields keep the built-in
// default.
type settingsDefaultsFile struct {
	DefaultSessionDuration *int                 `yaml:"default_session_duration"`
	DefaultTargetAccuracy  *int                 `yaml:"default_target_accuracy"`
	EnableNotifications    *bool                `yaml:"enable_notifications"`
	Theme                  *types.Theme         `yaml:"theme"`
	CueLevels              []types.CueLevel     `yaml:"cue_levels"`
	ResponseOptions        []types.ResponseType `yaml:"response_options"`
}

// LoadSettingsDefaults returns the AppSettings used when nothing has been
// persisted yet: the built-in defaults, overlaid with the YAML file at
// path when one is configured. The result is clamped like any other
// settings write.
func LoadSettingsDefaults(path string) (types.AppSettings, error) {
	defaults := types.DefaultSettings()
	if path == "" {
		return defaults, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read settings defaults: %w", err)
	}
	var file settingsDefaultsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return defaults, fmt.Errorf("parse settings defaults: %w", err)
	}

	if file.DefaultSessionDuration != nil {
		defaults.DefaultSessionDuration = *file.DefaultSessionDuration
	}
	if file.DefaultTargetAccuracy != nil {
		defaults.DefaultTargetAccuracy = *file.DefaultTargetAccuracy
	}
	if file.EnableNotifications != nil {
		defaults.EnableNotifications = *file.EnableNotifications
	}
	if file.Theme != nil {
		defaults.Theme = *file.Theme
	}
	if len(file.CueLevels) > 0 {
		defaults.CueLevels = file.CueLevels
	}
	if len(file.ResponseOptions) > 0 {
		defaults.ResponseOptions = file.ResponseOptions
	}
	defaults.Clamp()
	return defaults, nil
}
