package game

import "github.com/persuasion-games/persuade/internal/models"

// SenderExpectedUtility computes the Sender's expected utility for a
// validated scheme:
//
//	E[U_S] = Σ_ω μ₀(ω) · Σ_m P(m|ω) · U_S(a*(m), ω)
//
// where a*(m) is the Receiver's best response to the posterior induced by m.
// Signals with zero marginal probability are excluded from the expectation
// entirely. The function is pure: same inputs, same scalar.
func SenderExpectedUtility(sc *models.Scenario, scheme *models.Scheme) float64 {
	// Resolve the Receiver's action per signal once; -1 marks a signal that
	// is never sent.
	bestAction := make([]int, len(scheme.Signals))
	for m := range scheme.Signals {
		belief, marginal := Posterior(sc, scheme, m)
		if marginal == 0 {
			bestAction[m] = -1
			continue
		}
		bestAction[m] = BestResponse(sc, belief)
	}

	total := 0.0
	for w := range sc.States {
		forState := 0.0
		for m := range scheme.Signals {
			if bestAction[m] < 0 {
				continue
			}
			forState += scheme.Rows[w][m] * sc.SenderUtility[bestAction[m]][w]
		}
		total += sc.Prior[w] * forState
	}
	return total
}
