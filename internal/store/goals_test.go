package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/kv"
	"github.com/openslp/trialtrack-backend/internal/types"
)

func TestGoalStoreGetByClientID(t *testing.T) {
	ctx := context.Background()
	gs := NewGoalStore(kv.NewMemory(), testLogger(t))

	clientA := uuid.New()
	clientB := uuid.New()
	first := newGoal(clientA, types.StatusActive)
	second := newGoal(clientA, types.StatusDiscontinued)
	other := newGoal(clientB, types.StatusActive)
	for _, g := range []*types.Goal{first, second, other} {
		if err := gs.Save(ctx, g); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	goals, err := gs.GetByClientID(ctx, clientA)
	if err != nil {
		t.Fatalf("GetByClientID: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("got %d goals, want 2", len(goals))
	}
	// Insertion order is preserved.
	if goals[0].ID != first.ID || goals[1].ID != second.ID {
		t.Fatalf("goals out of insertion order: %+v", goals)
	}
}

func TestGoalStoreGetActiveByClientID(t *testing.T) {
	ctx := context.Background()
	gs := NewGoalStore(kv.NewMemory(), testLogger(t))

	clientID := uuid.New()
	active := newGoal(clientID, types.StatusActive)
	discontinued := newGoal(clientID, types.StatusDiscontinued)
	for _, g := range []*types.Goal{active, discontinued} {
		if err := gs.Save(ctx, g); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	goals, err := gs.GetActiveByClientID(ctx, clientID)
	if err != nil {
		t.Fatalf("GetActiveByClientID: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != active.ID {
		t.Fatalf("got %+v, want exactly the active goal", goals)
	}
}

func TestGoalStoreDeleteByClientID(t *testing.T) {
	ctx := context.Background()
	gs := NewGoalStore(kv.NewMemory(), testLogger(t))

	clientID := uuid.New()
	keep := newGoal(uuid.New(), types.StatusActive)
	for _, g := range []*types.Goal{newGoal(clientID, types.StatusActive), newGoal(clientID, types.StatusAchieved), keep} {
		if err := gs.Save(ctx, g); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	removed, err := gs.DeleteByClientID(ctx, clientID)
	if err != nil {
		t.Fatalf("DeleteByClientID: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed %d goals, want 2", removed)
	}
	goals, err := gs.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != keep.ID {
		t.Fatalf("remaining goals wrong: %+v", goals)
	}

	removed, err = gs.DeleteByClientID(ctx, clientID)
	if err != nil || removed != 0 {
		t.Fatalf("second pass removed %d (err %v), want 0", removed, err)
	}
}
