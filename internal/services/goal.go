package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperr "github.com/openslp/trialtrack-backend/internal/pkg/errors"
	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
	"github.com/openslp/trialtrack-backend/internal/stats"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

type GoalService interface {
	ListByClient(ctx context.Context, clientID uuid.UUID, activeOnly bool) ([]types.Goal, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Goal, error)
	Create(ctx context.Context, goal *types.Goal) (*types.Goal, error)
	Update(ctx context.Context, goal *types.Goal) (*types.Goal, error)
	// UpdateStatus applies one of the explicit transitions: active to
	// achieved or discontinued, or either terminal state back to active.
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.GoalStatus) (*types.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ApplySessionAccuracy folds one session's accuracy for this goal into
	// its stored accuracy and auto-achieves an active goal that reaches
	// its target.
	ApplySessionAccuracy(ctx context.Context, goalID uuid.UUID, sessionAccuracy int) (*types.Goal, error)
}

type goalService struct {
	log     *logger.Logger
	goals   store.GoalStore
	clients store.ClientStore
	mirror  *state.Mirror
}

func NewGoalService(log *logger.Logger, goals store.GoalStore, clients store.ClientStore, mirror *state.Mirror) GoalService {
	return &goalService{
		log:     log.With("service", "GoalService"),
		goals:   goals,
		clients: clients,
		mirror:  mirror,
	}
}

func (gs *goalService) ListByClient(ctx context.Context, clientID uuid.UUID, activeOnly bool) ([]types.Goal, error) {
	if activeOnly {
		return gs.goals.GetActiveByClientID(ctx, clientID)
	}
	return gs.goals.GetByClientID(ctx, clientID)
}

func (gs *goalService) Get(ctx context.Context, id uuid.UUID) (*types.Goal, error) {
	return gs.goals.GetByID(ctx, id)
}

func (gs *goalService) Create(ctx context.Context, goal *types.Goal) (*types.Goal, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return nil, fmt.Errorf("%w: goal name is required", apperr.ErrInvalidArgument)
	}
	if !goal.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrInvalidArgument, goal.Category)
	}
	if _, err := gs.clients.GetByID(ctx, goal.ClientID); err != nil {
		return nil, fmt.Errorf("%w: client %s does not exist", apperr.ErrInvalidArgument, goal.ClientID)
	}
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	goal.TargetAccuracy = clampTarget(goal.TargetAccuracy)
	goal.CurrentAccuracy = 0
	goal.Status = types.StatusActive
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if err := gs.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	gs.mirror.PutGoal(*goal)
	gs.log.Info("goal created", "goal_id", goal.ID, "client_id", goal.ClientID)
	return goal, nil
}

func (gs *goalService) Update(ctx context.Context, goal *types.Goal) (*types.Goal, error) {
	if strings.TrimSpace(goal.Name) == "" {
		return nil, fmt.Errorf("%w: goal name is required", apperr.ErrInvalidArgument)
	}
	if !goal.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperr.ErrInvalidArgument, goal.Category)
	}
	existing, err := gs.goals.GetByID(ctx, goal.ID)
	if err != nil {
		return nil, err
	}
	goal.TargetAccuracy = clampTarget(goal.TargetAccuracy)
	goal.ClientID = existing.ClientID
	goal.CurrentAccuracy = existing.CurrentAccuracy
	goal.Status = existing.Status
	goal.CreatedAt = existing.CreatedAt
	if err := gs.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	gs.mirror.PutGoal(*goal)
	return goal, nil
}

func (gs *goalService) UpdateStatus(ctx context.Context, id uuid.UUID, status types.GoalStatus) (*types.Goal, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidArgument, status)
	}
	goal, err := gs.goals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !goal.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move goal from %s to %s", apperr.ErrInvalidArgument, goal.Status, status)
	}
	goal.Status = status
	if err := gs.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	gs.mirror.PutGoal(*goal)
	gs.log.Info("goal status changed", "goal_id", id, "status", status)
	return goal, nil
}

func (gs *goalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := gs.goals.Delete(ctx, id); err != nil {
		return err
	}
	gs.mirror.RemoveGoal(id)
	return nil
}

func (gs *goalService) ApplySessionAccuracy(ctx context.Context, goalID uuid.UUID, sessionAccuracy int) (*types.Goal, error) {
	goal, err := gs.goals.GetByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	goal.CurrentAccuracy = stats.BlendAccuracy(goal.CurrentAccuracy, sessionAccuracy)
	if goal.Status == types.StatusActive && goal.CurrentAccuracy >= goal.TargetAccuracy {
		goal.Status = types.StatusAchieved
		gs.log.Info("goal achieved", "goal_id", goalID, "accuracy", goal.CurrentAccuracy)
	}
	if err := gs.goals.Save(ctx, goal); err != nil {
		return nil, err
	}
	gs.mirror.PutGoal(*goal)
	return goal, nil
}

func clampTarget(v int) int {
	if v < types.MinTargetAccuracy {
		return types.MinTargetAccuracy
	}
	if v > types.MaxTargetAccuracy {
		return types.MaxTargetAccuracy
	}
	return v
}
