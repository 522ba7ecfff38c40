package types

import (
	"time"

	"github.com/google/uuid"
)

// GoalCategory classifies a therapy goal by treatment area.
type GoalCategory string

const (
	CategoryArticulation GoalCategory = "articulation"
	CategoryLanguage     GoalCategory = "language"
	CategoryFluency      GoalCategory = "fluency"
	CategoryVoice        GoalCategory = "voice"
	CategoryPragmatics   GoalCategory = "pragmatics"
	CategoryPhonology    GoalCategory = "phonology"
	CategoryOther        GoalCategory = "other"
)

// Valid returns true when the category is a supported value.
func (c GoalCategory) Valid() bool {
	switch c {
	case CategoryArticulation, CategoryLanguage, CategoryFluency,
		CategoryVoice, CategoryPragmatics, CategoryPhonology, CategoryOther:
		return true
	default:
		return false
	}
}

// GoalStatus is the lifecycle state of a goal. The three states are
// mutually exclusive; allowed transitions are active->achieved,
// active->discontinued, and either terminal state back to active.
type GoalStatus string

const (
	StatusActive       GoalStatus = "active"
	StatusAchieved     GoalStatus = "achieved"
	StatusDiscontinued GoalStatus = "discontinued"
)

// Valid returns true when the status is a supported value.
func (s GoalStatus) Valid() bool {
	switch s {
	case StatusActive, StatusAchieved, StatusDiscontinued:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status may move to next. A no-op
// transition to the same status is always allowed.
func (s GoalStatus) CanTransitionTo(next GoalStatus) bool {
	if s == next {
		return true
	}
	switch {
	case s == StatusActive:
		return next == StatusAchieved || next == StatusDiscontinued
	case next == StatusActive:
		return true
	default:
		return false
	}
}

// Goal is a measurable therapy objective owned by exactly one client.
// CurrentAccuracy is derived from session recordings.
type Goal struct {
	ID              uuid.UUID    `json:"id"`
	ClientID        uuid.UUID    `json:"client_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Category        GoalCategory `json:"category"`
	TargetAccuracy  int          `json:"target_accuracy"`
	CurrentAccuracy int          `json:"current_accuracy"`
	Status          GoalStatus   `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
