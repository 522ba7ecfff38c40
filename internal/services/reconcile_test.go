package services

import (
	"context"
	"testing"
	"time"

	"github.com/openslp/trialtrack-backend/internal/types"
)

func TestReconcileRemovesOrphans(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	keeper := env.addClient(t, ctx, "Ada")
	keptGoal := env.addGoal(t, ctx, keeper.ID, 80)

	doomed := env.addClient(t, ctx, "Bea")
	orphanGoal := env.addGoal(t, ctx, doomed.ID, 80)
	orphanSession := env.addSession(t, ctx, doomed.ID, time.Now().UTC(), []types.Trial{
		trial(orphanGoal.ID, types.ResponseCorrect),
	})

	// Delete the client record directly, skipping the service cascade, to
	// simulate an interrupted delete.
	if err := env.clientStore.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete client record: %v", err)
	}

	report, err := env.recon.Run(ctx, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.OrphanedGoals != 1 || report.OrphanedSessions != 1 || report.DryRun {
		t.Fatalf("report = %+v, want 1 goal, 1 session, live run", report)
	}

	goals, err := env.goalStore.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != keptGoal.ID {
		t.Fatalf("surviving goals = %+v, want only %s", goals, keptGoal.ID)
	}
	sessions, err := env.sessionStore.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll sessions: %v", err)
	}
	for _, s := range sessions {
		if s.ID == orphanSession.ID {
			t.Fatalf("orphaned session %s survived", s.ID)
		}
	}
}

func TestReconcileDryRunLeavesData(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	doomed := env.addClient(t, ctx, "Bea")
	orphanGoal := env.addGoal(t, ctx, doomed.ID, 80)
	env.addSession(t, ctx, doomed.ID, time.Now().UTC(), []types.Trial{
		trial(orphanGoal.ID, types.ResponseCorrect),
	})
	if err := env.clientStore.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete client record: %v", err)
	}

	report, err := env.recon.Run(ctx, true)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.OrphanedGoals != 1 || report.OrphanedSessions != 1 || !report.DryRun {
		t.Fatalf("report = %+v, want 1 goal, 1 session, dry run", report)
	}

	goals, err := env.goalStore.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll goals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("dry run removed goals: %+v", goals)
	}
	sessions, err := env.sessionStore.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("dry run removed sessions: %+v", sessions)
	}
}

func TestReconcileCleanStore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.addClient(t, ctx, "Ada")
	env.addGoal(t, ctx, client.ID, 80)

	report, err := env.recon.Run(ctx, false)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.OrphanedGoals != 0 || report.OrphanedSessions != 0 {
		t.Fatalf("clean store reported orphans: %+v", report)
	}
}
