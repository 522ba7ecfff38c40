package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/kv"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type testEnv struct {
	kv       *kv.Memory
	mirror   *state.Mirror
	clients  ClientService
	goals    GoalService
	sessions SessionService
	settings SettingsService
	backup   BackupService
	report   ReportService
	recon    ReconcileService

	clientStore  store.ClientStore
	goalStore    store.GoalStore
	sessionStore store.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	mem := kv.NewMemory()
	clientStore := store.NewClientStore(mem, log)
	goalStore := store.NewGoalStore(mem, log)
	sessionStore := store.NewSessionStore(mem, log)
	settingsStore := store.NewSettingsStore(mem, log, types.DefaultSettings())
	backupStore := store.NewBackupStore(mem, log)
	mirror := state.NewMirror()

	goals := NewGoalService(log, goalStore, clientStore, mirror)
	return &testEnv{
		kv:           mem,
		mirror:       mirror,
		clients:      NewClientService(log, clientStore, goalStore, sessionStore, mirror),
		goals:        goals,
		sessions:     NewSessionService(log, sessionStore, clientStore, goals, mirror),
		settings:     NewSettingsService(log, settingsStore, mirror),
		backup:       NewBackupService(log, backupStore, clientStore, goalStore, sessionStore, settingsStore, mirror),
		report:       NewReportService(log, sessionStore, mirror),
		recon:        NewReconcileService(log, clientStore, goalStore, sessionStore),
		clientStore:  clientStore,
		goalStore:    goalStore,
		sessionStore: sessionStore,
	}
}

func (env *testEnv) addClient(t *testing.T, ctx context.Context, firstName string) *types.Client {
	t.Helper()
	client, err := env.clients.Create(ctx, &types.Client{
		FirstName:   firstName,
		LastName:    "Tester",
		DateOfBirth: time.Date(2016, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func (env *testEnv) addGoal(t *testing.T, ctx context.Context, clientID uuid.UUID, target int) *types.Goal {
	t.Helper()
	goal, err := env.goals.Create(ctx, &types.Goal{
		ClientID:       clientID,
		Name:           "Produce /s/ blends",
		Category:       types.CategoryArticulation,
		TargetAccuracy: target,
	})
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	return goal
}

func trial(goalID uuid.UUID, response types.ResponseType) types.Trial {
	return types.Trial{
		GoalID:   goalID,
		Response: response,
		CueLevel: types.CueIndependent,
	}
}
