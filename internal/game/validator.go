package game

import (
	"fmt"
	"math"
	"sort"

	"github.com/persuasion-games/persuade/internal/models"
)

// Epsilon is the numerical tolerance used for probability checks and for
// utility tie-breaking.
const Epsilon = 1e-6

// ValidateTable checks a raw, label-keyed candidate table against a scenario
// and either returns a validated scheme or an explicit rejection. Checks run
// in a fixed order: shape first, then entry range, then row normalization;
// the first failure wins. Rejection is a normal outcome to be scored, so
// there is no error return.
func ValidateTable(sc *models.Scenario, raw models.RawScheme) (*models.Scheme, *models.SchemeRejection) {
	if len(raw) != len(sc.States) {
		return nil, &models.SchemeRejection{
			Code:   models.RejectionWrongShape,
			Detail: fmt.Sprintf("table has %d rows, want one per state (%d)", len(raw), len(sc.States)),
		}
	}

	signalSet := map[string]bool{}
	for _, state := range sc.States {
		row, ok := raw[state]
		if !ok {
			return nil, &models.SchemeRejection{
				Code:   models.RejectionWrongShape,
				Detail: fmt.Sprintf("no row for state %q", state),
			}
		}
		if len(row) == 0 {
			return nil, &models.SchemeRejection{
				Code:   models.RejectionWrongShape,
				Detail: fmt.Sprintf("state %q has no signals", state),
			}
		}
		for signal := range row {
			signalSet[signal] = true
		}
	}

	// Fix a deterministic column order so the same raw table always produces
	// the same scheme.
	signals := make([]string, 0, len(signalSet))
	for signal := range signalSet {
		signals = append(signals, signal)
	}
	sort.Strings(signals)

	rows := make([][]float64, len(sc.States))
	for i, state := range sc.States {
		rows[i] = make([]float64, len(signals))
		for j, signal := range signals {
			rows[i][j] = raw[state][signal]
		}
	}

	scheme := &models.Scheme{Signals: signals, Rows: rows}
	if rej := ValidateScheme(sc, scheme); rej != nil {
		return nil, rej
	}
	return scheme, nil
}

// ValidateScheme checks an already-tabular scheme against a scenario. It is
// applied to baseline schemes as well, so every table entering the referee
// passes through the same gate.
func ValidateScheme(sc *models.Scenario, scheme *models.Scheme) *models.SchemeRejection {
	if len(scheme.Rows) != len(sc.States) {
		return &models.SchemeRejection{
			Code:   models.RejectionWrongShape,
			Detail: fmt.Sprintf("scheme has %d rows, want one per state (%d)", len(scheme.Rows), len(sc.States)),
		}
	}
	if len(scheme.Signals) == 0 {
		return &models.SchemeRejection{
			Code:   models.RejectionWrongShape,
			Detail: "scheme has no signals",
		}
	}

	for i, row := range scheme.Rows {
		if len(row) != len(scheme.Signals) {
			return &models.SchemeRejection{
				Code:   models.RejectionWrongShape,
				Detail: fmt.Sprintf("row for state %q has %d entries, want %d", sc.States[i], len(row), len(scheme.Signals)),
			}
		}
		for j, p := range row {
			if p < -Epsilon || p > 1+Epsilon {
				return &models.SchemeRejection{
					Code:   models.RejectionNegativeProbability,
					Detail: fmt.Sprintf("P(%s|%s) = %v is outside [0,1]", scheme.Signals[j], sc.States[i], p),
				}
			}
		}
	}

	for i, row := range scheme.Rows {
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		if math.Abs(sum-1.0) > Epsilon {
			return &models.SchemeRejection{
				Code:   models.RejectionRowNotNormalized,
				Detail: fmt.Sprintf("row for state %q sums to %v, want 1", sc.States[i], sum),
			}
		}
	}

	return nil
}
