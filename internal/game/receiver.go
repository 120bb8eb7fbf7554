package game

import (
	"math"

	"github.com/persuasion-games/persuade/internal/models"
)

// BestResponse returns the index of the action maximizing the Receiver's
// expected utility under the given posterior:
//
//	a* = argmax_a Σ_ω P(ω|m)·U_R(a,ω)
//
// Actions that tie within Epsilon resolve to the lowest-indexed action, so
// scoring is deterministic and reproducible.
func BestResponse(sc *models.Scenario, belief []float64) int {
	best := 0
	bestEU := math.Inf(-1)

	for a := range sc.Actions {
		eu := 0.0
		for w := range sc.States {
			eu += sc.ReceiverUtility[a][w] * belief[w]
		}
		if eu > bestEU+Epsilon {
			bestEU = eu
			best = a
		}
	}

	return best
}
