package game

import "github.com/persuasion-games/persuade/internal/models"

// Posterior applies Bayes' rule for one signal column:
//
//	P(ω|m) = P(m|ω)·μ₀(ω) / Σ_ω' P(m|ω')·μ₀(ω')
//
// It returns the posterior over states (aligned with Scenario.States) and the
// signal's marginal probability P(m). When the marginal is zero the signal is
// never sent under this scheme and prior: the posterior is undefined, so the
// belief is nil and callers must give the signal zero weight.
func Posterior(sc *models.Scenario, scheme *models.Scheme, signal int) ([]float64, float64) {
	marginal := 0.0
	for i := range sc.States {
		marginal += scheme.Rows[i][signal] * sc.Prior[i]
	}

	if marginal == 0 {
		return nil, 0
	}

	belief := make([]float64, len(sc.States))
	for i := range sc.States {
		belief[i] = scheme.Rows[i][signal] * sc.Prior[i] / marginal
	}
	return belief, marginal
}
