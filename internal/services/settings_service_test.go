package services

import (
	"context"
	"testing"

	"github.com/openslp/trialtrack-backend/internal/types"
)

func TestSettingsUpdateClampsValues(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	updated, err := env.settings.Update(ctx, types.AppSettings{
		DefaultSessionDuration: 600,
		DefaultTargetAccuracy:  0,
		Theme:                  "neon",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DefaultSessionDuration != types.MaxSessionDuration {
		t.Fatalf("duration = %d, want clamp to %d", updated.DefaultSessionDuration, types.MaxSessionDuration)
	}
	if updated.DefaultTargetAccuracy != types.MinTargetAccuracy {
		t.Fatalf("target = %d, want clamp to %d", updated.DefaultTargetAccuracy, types.MinTargetAccuracy)
	}
	if updated.Theme != types.ThemeSystem {
		t.Fatalf("theme = %q, want fallback to system", updated.Theme)
	}
	if len(updated.CueLevels) == 0 || len(updated.ResponseOptions) == 0 {
		t.Fatal("empty enum lists not backfilled")
	}

	// Reads come from the mirror, which must see the update.
	if got := env.settings.Get(ctx); got.DefaultSessionDuration != types.MaxSessionDuration {
		t.Fatalf("Get after Update = %+v", got)
	}
}

func TestSettingsReset(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	if _, err := env.settings.Update(ctx, types.AppSettings{
		DefaultSessionDuration: 45,
		DefaultTargetAccuracy:  90,
		Theme:                  types.ThemeDark,
	}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reset, err := env.settings.Reset(ctx)
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	def := types.DefaultSettings()
	if reset.DefaultSessionDuration != def.DefaultSessionDuration || reset.Theme != def.Theme {
		t.Fatalf("Reset = %+v, want defaults", reset)
	}
	if got := env.settings.Get(ctx); got.Theme != def.Theme {
		t.Fatalf("Get after Reset = %+v", got)
	}
}
