// Package metrics turns raw sender utilities into the benchmark's scoring
// metrics and aggregates them across repeated runs. Undefined ratios are
// represented as nil pointers and stay nil all the way to the report; they
// are never coerced to zero or silently averaged.
package metrics

import (
	"github.com/persuasion-games/persuade/internal/models"
	"github.com/persuasion-games/persuade/internal/statistics"
)

// WorstBaseline is the floor used by the RPL normalization: the lesser of the
// two reference schemes' utilities.
func WorstBaseline(uFull, uNoRev float64) float64 {
	if uFull < uNoRev {
		return uFull
	}
	return uNoRev
}

// OptimalityGap computes (u_opt − u) / u_opt, the normalized shortfall from
// the theoretical optimum. Nil when u_opt is zero.
func OptimalityGap(u, uOpt float64) *float64 {
	if uOpt == 0 {
		return nil
	}
	gap := (uOpt - u) / uOpt
	return &gap
}

// RPL computes (u − u_worst) / (u_opt − u_worst), the normalized position of
// u between the worst baseline and the optimum. Nil when the optimum equals
// the worst baseline, which makes the ratio undefined.
func RPL(u, uOpt, uWorst float64) *float64 {
	if uOpt == uWorst {
		return nil
	}
	rpl := (u - uWorst) / (uOpt - uWorst)
	return &rpl
}

// Score fills the metric fields of a run record from its sender utility and
// the scenario's reference utilities. Records for invalid schemes pass
// through untouched: their utility and both ratios stay nil.
func Score(rec *models.RunRecord) {
	rec.WorstBaselineUtility = WorstBaseline(rec.FullRevelationUtility, rec.NoRevelationUtility)
	if !rec.IsValidScheme || rec.SenderUtility == nil {
		return
	}
	rec.OptimalityGap = OptimalityGap(*rec.SenderUtility, rec.OptimumUtility)
	rec.RPL = RPL(*rec.SenderUtility, rec.OptimumUtility, rec.WorstBaselineUtility)
}

// Aggregate summarizes repeated runs of one scenario. SVR counts every run in
// its denominator; the means cover valid runs only, and within those, only
// runs where the metric is defined.
func Aggregate(records []models.RunRecord) models.Aggregate {
	agg := models.Aggregate{TotalRuns: len(records)}

	var utilities, gaps, rpls []float64
	for _, rec := range records {
		if !rec.IsValidScheme {
			continue
		}
		agg.ValidRuns++
		if rec.SenderUtility != nil {
			utilities = append(utilities, *rec.SenderUtility)
		}
		if rec.OptimalityGap != nil {
			gaps = append(gaps, *rec.OptimalityGap)
		}
		if rec.RPL != nil {
			rpls = append(rpls, *rec.RPL)
		}
	}

	if agg.TotalRuns > 0 {
		agg.SchemeValidityRate = float64(agg.ValidRuns) / float64(agg.TotalRuns)
	}

	agg.MeanSenderUtility = meanOrNil(utilities)
	agg.MeanOptimalityGap = meanOrNil(gaps)
	agg.MeanRPL = meanOrNil(rpls)
	return agg
}

// UtilityCI computes a bootstrap confidence interval over the sender
// utilities of valid runs. Nil when fewer than two valid runs exist.
func UtilityCI(records []models.RunRecord, confidenceLevel float64) *statistics.ConfidenceInterval {
	var utilities []float64
	for _, rec := range records {
		if rec.IsValidScheme && rec.SenderUtility != nil {
			utilities = append(utilities, *rec.SenderUtility)
		}
	}
	if len(utilities) < 2 {
		return nil
	}
	ci := statistics.BootstrapCI(utilities, confidenceLevel)
	return &ci
}

func meanOrNil(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	m := statistics.Mean(values)
	return &m
}
