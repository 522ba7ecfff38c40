// Package stats derives summary statistics from recorded trials. Every
// function here is pure; callers supply the pre-filtered trial sequence
// and the functions know nothing about session or goal boundaries.
package stats

import (
	"math"

	"github.com/openslp/trialtrack-backend/internal/types"
)

// ComputeStats partitions the trials by response and derives the accuracy
// percentage. Accuracy is round(100*correct/total), rounded half away
// from zero, and 0 for an empty input. The result is independent of
// trial order.
func ComputeStats(trials []types.Trial) types.SessionStats {
	s := types.SessionStats{TotalTrials: len(trials)}
	for _, t := range trials {
		switch t.Response {
		case types.ResponseCorrect:
			s.CorrectTrials++
		case types.ResponseIncorrect:
			s.IncorrectTrials++
		case types.ResponseApproximation:
			s.ApproximationTrials++
		case types.ResponseNoResponse:
			s.NoResponseTrials++
		}
	}
	if s.TotalTrials > 0 {
		s.Accuracy = roundPercent(float64(s.CorrectTrials) * 100 / float64(s.TotalTrials))
	}
	return s
}

// BlendAccuracy is the accuracy update applied to a goal after a session:
// a two-point average of the goal's prior stored accuracy and this
// session's accuracy. It deliberately does not weight by trial count; the
// stored accuracy history depends on this exact formula.
func BlendAccuracy(prior, session int) int {
	return roundPercent(float64(prior+session) / 2)
}

func roundPercent(v float64) int {
	return int(math.Round(v))
}
