package types

import (
	"time"

	"github.com/google/uuid"
)

// SessionStats summarizes a set of trials. The four counts partition the
// input, so they always sum to TotalTrials.
type SessionStats struct {
	TotalTrials         int `json:"total_trials"`
	CorrectTrials       int `json:"correct_trials"`
	IncorrectTrials     int `json:"incorrect_trials"`
	ApproximationTrials int `json:"approximation_trials"`
	NoResponseTrials    int `json:"no_response_trials"`
	Accuracy            int `json:"accuracy"`
}

// GoalStats pairs one goal's stats with enough identity to render it.
// GoalName carries a placeholder when the goal has since been deleted.
type GoalStats struct {
	GoalID   uuid.UUID    `json:"goal_id"`
	GoalName string       `json:"goal_name"`
	Stats    SessionStats `json:"stats"`
}

// SessionReport is the derived view of a single recorded session.
type SessionReport struct {
	SessionID uuid.UUID    `json:"session_id"`
	ClientID  uuid.UUID    `json:"client_id"`
	Date      time.Time    `json:"date"`
	Overall   SessionStats `json:"overall"`
	PerGoal   []GoalStats  `json:"per_goal"`
}

// ProgressReport aggregates trials across a client's sessions inside a
// date range.
type ProgressReport struct {
	ClientID     uuid.UUID    `json:"client_id"`
	From         time.Time    `json:"from"`
	To           time.Time    `json:"to"`
	SessionCount int          `json:"session_count"`
	Overall      SessionStats `json:"overall"`
	PerGoal      []GoalStats  `json:"per_goal"`
}
