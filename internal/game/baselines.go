package game

import "github.com/persuasion-games/persuade/internal/models"

// NoRevelationSignal is the single signal emitted by the No Revelation
// scheme.
const NoRevelationSignal = "no_signal"

// FullRevelation builds the scheme that deterministically reveals the true
// state: M = Ω and P(m=ω'|ω) is the identity matrix. Generation is
// deterministic; calling it twice yields identical tables.
func FullRevelation(sc *models.Scenario) *models.Scheme {
	signals := make([]string, len(sc.States))
	copy(signals, sc.States)

	rows := make([][]float64, len(sc.States))
	for i := range sc.States {
		rows[i] = make([]float64, len(signals))
		rows[i][i] = 1.0
	}

	return &models.Scheme{Signals: signals, Rows: rows}
}

// NoRevelation builds the scheme that sends one constant signal regardless of
// state, leaving the Receiver with the prior.
func NoRevelation(sc *models.Scenario) *models.Scheme {
	rows := make([][]float64, len(sc.States))
	for i := range sc.States {
		rows[i] = []float64{1.0}
	}

	return &models.Scheme{Signals: []string{NoRevelationSignal}, Rows: rows}
}
