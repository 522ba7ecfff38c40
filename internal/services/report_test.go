package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/types"
)

func (env *testEnv) addSession(t *testing.T, ctx context.Context, clientID uuid.UUID, date time.Time, trials []types.Trial) *types.Session {
	t.Helper()
	goalSet := map[uuid.UUID]bool{}
	var goalIDs []uuid.UUID
	for _, tr := range trials {
		if !goalSet[tr.GoalID] {
			goalSet[tr.GoalID] = true
			goalIDs = append(goalIDs, tr.GoalID)
		}
	}
	session, err := env.sessions.Record(ctx, &types.Session{
		ClientID: clientID,
		Date:     date,
		Duration: 30,
		GoalIDs:  goalIDs,
		Trials:   trials,
	})
	if err != nil {
		t.Fatalf("record session: %v", err)
	}
	return session
}

func TestSessionStatsPerGoal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.addClient(t, ctx, "Ada")
	artic := env.addGoal(t, ctx, client.ID, 80)
	fluency := env.addGoal(t, ctx, client.ID, 80)

	session := env.addSession(t, ctx, client.ID, time.Now().UTC(), []types.Trial{
		trial(artic.ID, types.ResponseCorrect),
		trial(artic.ID, types.ResponseIncorrect),
		trial(fluency.ID, types.ResponseCorrect),
		trial(artic.ID, types.ResponseCorrect),
	})

	report, err := env.report.SessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("SessionStats: %v", err)
	}
	if report.Overall.TotalTrials != 4 || report.Overall.Accuracy != 75 {
		t.Fatalf("overall = %+v, want 4 trials at 75%%", report.Overall)
	}
	if len(report.PerGoal) != 2 {
		t.Fatalf("per-goal count = %d, want 2", len(report.PerGoal))
	}
	// Goals appear in first-trial order.
	if report.PerGoal[0].GoalID != artic.ID || report.PerGoal[1].GoalID != fluency.ID {
		t.Fatalf("per-goal order = %s, %s", report.PerGoal[0].GoalID, report.PerGoal[1].GoalID)
	}
	if report.PerGoal[0].Stats.Accuracy != 67 {
		t.Fatalf("artic accuracy = %d, want 67", report.PerGoal[0].Stats.Accuracy)
	}
	if report.PerGoal[0].GoalName != artic.Name {
		t.Fatalf("goal name = %q, want %q", report.PerGoal[0].GoalName, artic.Name)
	}
}

func TestSessionStatsDeletedGoalPlaceholder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.addClient(t, ctx, "Ada")
	goal := env.addGoal(t, ctx, client.ID, 80)

	session := env.addSession(t, ctx, client.ID, time.Now().UTC(), []types.Trial{
		trial(goal.ID, types.ResponseCorrect),
	})
	if err := env.goals.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}

	report, err := env.report.SessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("SessionStats: %v", err)
	}
	if got := report.PerGoal[0].GoalName; got != "(deleted goal)" {
		t.Fatalf("goal name = %q, want placeholder", got)
	}
}

func TestClientProgressDateFilter(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.addClient(t, ctx, "Ada")
	other := env.addClient(t, ctx, "Bea")
	goal := env.addGoal(t, ctx, client.ID, 80)
	otherGoal := env.addGoal(t, ctx, other.ID, 80)

	jan := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	env.addSession(t, ctx, client.ID, jan, []types.Trial{trial(goal.ID, types.ResponseIncorrect)})
	env.addSession(t, ctx, client.ID, feb, []types.Trial{
		trial(goal.ID, types.ResponseCorrect),
		trial(goal.ID, types.ResponseCorrect),
	})
	env.addSession(t, ctx, client.ID, mar, []types.Trial{trial(goal.ID, types.ResponseCorrect)})
	env.addSession(t, ctx, other.ID, feb, []types.Trial{trial(otherGoal.ID, types.ResponseIncorrect)})

	cases := []struct {
		name         string
		from, to     time.Time
		sessionCount int
		totalTrials  int
	}{
		{"open_bounds", time.Time{}, time.Time{}, 3, 4},
		{"from_only", feb.Add(-time.Hour), time.Time{}, 2, 3},
		{"to_only", time.Time{}, feb.Add(time.Hour), 2, 3},
		{"window", feb.Add(-time.Hour), feb.Add(time.Hour), 1, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := env.report.ClientProgress(ctx, client.ID, tc.from, tc.to)
			if err != nil {
				t.Fatalf("ClientProgress: %v", err)
			}
			if report.SessionCount != tc.sessionCount {
				t.Fatalf("session count = %d, want %d", report.SessionCount, tc.sessionCount)
			}
			if report.Overall.TotalTrials != tc.totalTrials {
				t.Fatalf("total trials = %d, want %d", report.Overall.TotalTrials, tc.totalTrials)
			}
		})
	}
}

func TestClientProgressEmptyWindow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	client := env.addClient(t, ctx, "Ada")

	report, err := env.report.ClientProgress(ctx, client.ID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("ClientProgress: %v", err)
	}
	if report.SessionCount != 0 || report.Overall.TotalTrials != 0 || len(report.PerGoal) != 0 {
		t.Fatalf("empty progress report not empty: %+v", report)
	}
}
