package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/openslp/trialtrack-backend/internal/pkg/logger"
	"github.com/openslp/trialtrack-backend/internal/store"
)

// ReconcileReport counts what a reconcile pass found (and, unless it was
// a dry run, removed).
type ReconcileReport struct {
	OrphanedGoals    int  `json:"orphaned_goals"`
	OrphanedSessions int  `json:"orphaned_sessions"`
	DryRun           bool `json:"dry_run"`
}

// ReconcileService repairs the damage an interrupted client-delete
// cascade can leave behind: goals and sessions whose client id no longer
// resolves. Trials referencing deleted goals are left alone; reports
// render those with a placeholder name instead.
type ReconcileService interface {
	Run(ctx context.Context, dryRun bool) (ReconcileReport, error)
}

type reconcileService struct {
	log      *logger.Logger
	clients  store.ClientStore
	goals    store.GoalStore
	sessions store.SessionStore
}

func NewReconcileService(log *logger.Logger, clients store.ClientStore, goals store.GoalStore, sessions store.SessionStore) ReconcileService {
	return &reconcileService{
		log:      log.With("service", "ReconcileService"),
		clients:  clients,
		goals:    goals,
		sessions: sessions,
	}
}

func (rs *reconcileService) Run(ctx context.Context, dryRun bool) (ReconcileReport, error) {
	report := ReconcileReport{DryRun: dryRun}

	clients, err := rs.clients.GetAll(ctx)
	if err != nil {
		return report, err
	}
	known := make(map[uuid.UUID]bool, len(clients))
	for _, c := range clients {
		known[c.ID] = true
	}

	goals, err := rs.goals.GetAll(ctx)
	if err != nil {
		return report, err
	}
	for _, g := range goals {
		if !known[g.ClientID] {
			report.OrphanedGoals++
			if !dryRun {
				if err := rs.goals.Delete(ctx, g.ID); err != nil {
					return report, err
				}
			}
		}
	}

	sessions, err := rs.sessions.GetAll(ctx)
	if err != nil {
		return report, err
	}
	for _, s := range sessions {
		if !known[s.ClientID] {
			report.OrphanedSessions++
			if !dryRun {
				if err := rs.sessions.Delete(ctx, s.ID); err != nil {
					return report, err
				}
			}
		}
	}

	if report.OrphanedGoals > 0 || report.OrphanedSessions > 0 {
		rs.log.Warn("reconcile found orphans",
			"orphaned_goals", report.OrphanedGoals,
			"orphaned_sessions", report.OrphanedSessions,
			"dry_run", dryRun)
	}
	return report, nil
}
