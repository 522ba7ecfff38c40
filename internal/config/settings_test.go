package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openslp/trialtrack-backend/internal/types"
)

func writeDefaultsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write defaults file: %v", err)
	}
	return path
}

func TestLoadSettingsDefaultsNoPath(t *testing.T) {
	got, err := LoadSettingsDefaults("")
	if err != nil {
		t.Fatalf("LoadSettingsDefaults: %v", err)
	}
	def := types.DefaultSettings()
	if got.DefaultSessionDuration != def.DefaultSessionDuration || got.Theme != def.Theme {
		t.Fatalf("got %+v, want built-in defaults", got)
	}
}

func TestLoadSettingsDefaultsOverlay(t *testing.T) {
	path := writeDefaultsFile(t, `
default_session_duration: 45
theme: dark
cue_levels:
  - independent
  - verbal_cue
`)
	got, err := LoadSettingsDefaults(path)
	if err != nil {
		t.Fatalf("LoadSettingsDefaults: %v", err)
	}
	if got.DefaultSessionDuration != 45 {
		t.Fatalf("duration = %d, want 45", got.DefaultSessionDuration)
	}
	if got.Theme != types.ThemeDark {
		t.Fatalf("theme = %q, want dark", got.Theme)
	}
	if len(got.CueLevels) != 2 {
		t.Fatalf("cue levels = %v, want the two from the file", got.CueLevels)
	}
	// Fields absent from the file keep their built-in values.
	if got.DefaultTargetAccuracy != types.DefaultSettings().DefaultTargetAccuracy {
		t.Fatalf("target = %d, want untouched default", got.DefaultTargetAccuracy)
	}
}

func TestLoadSettingsDefaultsClampsOverrides(t *testing.T) {
	path := writeDefaultsFile(t, `
default_session_duration: 999
default_target_accuracy: -5
theme: neon
`)
	got, err := LoadSettingsDefaults(path)
	if err != nil {
		t.Fatalf("LoadSettingsDefaults: %v", err)
	}
	if got.DefaultSessionDuration != types.MaxSessionDuration {
		t.Fatalf("duration = %d, want clamp to %d", got.DefaultSessionDuration, types.MaxSessionDuration)
	}
	if got.DefaultTargetAccuracy != types.MinTargetAccuracy {
		t.Fatalf("target = %d, want clamp to %d", got.DefaultTargetAccuracy, types.MinTargetAccuracy)
	}
	if got.Theme != types.ThemeSystem {
		t.Fatalf("theme = %q, want fallback to system", got.Theme)
	}
}

func TestLoadSettingsDefaultsMissingFile(t *testing.T) {
	if _, err := LoadSettingsDefaults(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file did not error")
	}
}

func TestLoadSettingsDefaultsBadYAML(t *testing.T) {
	path := writeDefaultsFile(t, "default_session_duration: [not an int")
	if _, err := LoadSettingsDefaults(path); err == nil {
		t.Fatal("malformed file did not error")
	}
}
