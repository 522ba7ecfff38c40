package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/state"
	"github.com/openslp/trialtrack-backend/internal/stats"
	"github.com/openslp/trialtrack-backend/internal/store"
	"github.com/openslp/trialtrack-backend/internal/types"
)

// deletedGoalName is rendered when a trial references a goal that no
// longer exists. Historical trials outlive their goals on purpose.
const deletedGoalName = "(deleted goal)"

type ReportService interface {
	// SessionStats derives per-goal and overall statistics for one
	// recorded session.
	SessionStats(ctx context.Context, sessionID uuid.UUID) (*types.SessionReport, error)
	// ClientProgress aggregates all trials of the client's sessions with a
	// date in [from, to]. Zero bounds are open ends.
	ClientProgress(ctx context.Context, clientID uuid.UUID, from, to time.Time) (*types.ProgressReport, error)
}

type reportService struct {
	log      *logger.Logger
	sessions store.SessionStore
	mirror   *state.Mirror
}

func NewReportService(log *logger.Logger, sessions store.SessionStore, mirror *state.Mirror) ReportService {
	return &reportService{
		log:      log.With("service", "ReportService"),
		sessions: sessions,
		mirror:   mirror,
	}
}

func (rs *reportService) SessionStats(ctx context.Context, sessionID uuid.UUID) (*types.SessionReport, error) {
	session, err := rs.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	report := &types.SessionReport{
		SessionID: session.ID,
		ClientID:  session.ClientID,
		Date:      session.Date,
		Overall:   stats.ComputeStats(session.Trials),
	}
	for _, goalID := range trialGoalOrder(session.Trials) {
		report.PerGoal = append(report.PerGoal, types.GoalStats{
			GoalID:   goalID,
			GoalName: rs.goalName(goalID),
			Stats:    stats.ComputeStats(session.TrialsForGoal(goalID)),
		})
	}
	return report, nil
}

func (rs *reportService) ClientProgress(_ context.Context, clientID uuid.UUID, from, to time.Time) (*types.ProgressReport, error) {
	report := &types.ProgressReport{ClientID: clientID, From: from, To: to}

	var allTrials []types.Trial
	for _, session := range rs.mirror.Sessions() {
		if session.ClientID != clientID {
			continue
		}
		if !from.IsZero() && session.Date.Before(from) {
			continue
		}
		if !to.IsZero() && session.Date.After(to) {
			continue
		}
		report.SessionCount++
		allTrials = append(allTrials, session.Trials...)
	}
	report.Overall = stats.ComputeStats(allTrials)

	for _, goalID := range trialGoalOrder(allTrials) {
		var goalTrials []types.Trial
		for _, t := range allTrials {
			if t.GoalID == goalID {
				goalTrials = append(goalTrials, t)
			}
		}
		report.PerGoal = append(report.PerGoal, types.GoalStats{
			GoalID:   goalID,
			GoalName: rs.goalName(goalID),
			Stats:    stats.ComputeStats(goalTrials),
		})
	}
	return report, nil
}

func (rs *reportService) goalName(goalID uuid.UUID) string {
	if goal, ok := rs.mirror.GoalByID(goalID); ok {
		return goal.Name
	}
	return deletedGoalName
}

// trialGoalOrder returns the distinct goal ids in first-trial order.
func trialGoalOrder(trials []types.Trial) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var order []uuid.UUID
	for _, t := range trials {
		if !seen[t.GoalID] {
			seen[t.GoalID] = true
			order = append(order, t.GoalID)
		}
	}
	return order
}
