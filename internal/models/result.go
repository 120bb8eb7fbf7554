package models

import "time"

// RunRecord is the result of evaluating one candidate scheme: one row of the
// experiment's output. Created once per (scenario, run), then immutable.
type RunRecord struct {
	Scenario string `json:"scenario"`
	Run      int    `json:"run"`
	Provider string `json:"provider"`

	IsValidScheme bool          `json:"is_valid_scheme"`
	Rejection     RejectionCode `json:"rejection,omitempty"`

	// SenderUtility is u_llm: the Sender's expected utility under the
	// candidate scheme. Nil when the scheme was invalid.
	SenderUtility *float64 `json:"u_llm,omitempty"`

	OptimumUtility        float64 `json:"u_theoretical_optimum"`
	FullRevelationUtility float64 `json:"u_full_revelation"`
	NoRevelationUtility   float64 `json:"u_no_revelation"`
	WorstBaselineUtility  float64 `json:"u_worst_baseline"`

	// OptimalityGap is (u_opt − u_llm) / u_opt. Nil when the scheme was
	// invalid or when u_opt = 0 makes the ratio undefined.
	OptimalityGap *float64 `json:"optimality_gap,omitempty"`

	// RPL is (u_llm − u_worst) / (u_opt − u_worst). Nil when the scheme was
	// invalid or when u_opt equals the worst baseline.
	RPL *float64 `json:"rpl,omitempty"`

	DurationMs int64 `json:"duration_ms"`
}

// ScenarioOutcome collects all runs for one scenario plus their aggregate.
type ScenarioOutcome struct {
	Scenario              string      `json:"scenario"`
	OptimumUtility        float64     `json:"u_theoretical_optimum"`
	FullRevelationUtility float64     `json:"u_full_revelation"`
	NoRevelationUtility   float64     `json:"u_no_revelation"`
	Records               []RunRecord `json:"runs"`
	Aggregate             Aggregate   `json:"aggregate"`
}

// Aggregate summarizes repeated runs of one scenario. Means are taken over
// valid runs only, and within those, only over runs where the metric is
// defined; an aggregate over zero defined values is nil, never zero.
type Aggregate struct {
	TotalRuns int `json:"total_runs"`
	ValidRuns int `json:"valid_runs"`

	// SchemeValidityRate is valid_runs / total_runs, exact.
	SchemeValidityRate float64 `json:"svr"`

	MeanSenderUtility *float64 `json:"mean_u_llm,omitempty"`
	MeanOptimalityGap *float64 `json:"mean_optimality_gap,omitempty"`
	MeanRPL           *float64 `json:"mean_rpl,omitempty"`
}

// ExperimentOutcome is the top-level result handed to reporting.
type ExperimentOutcome struct {
	Experiment string            `json:"experiment"`
	Provider   string            `json:"provider"`
	ModelID    string            `json:"model_id,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	DurationMs int64             `json:"duration_ms"`
	Scenarios  []ScenarioOutcome `json:"scenarios"`

	TotalRuns          int     `json:"total_runs"`
	ValidRuns          int     `json:"valid_runs"`
	SchemeValidityRate float64 `json:"svr"`
}

// AllRecords flattens the per-scenario run records in scenario order.
func (o *ExperimentOutcome) AllRecords() []RunRecord {
	var out []RunRecord
	for _, sc := range o.Scenarios {
		out = append(out, sc.Records...)
	}
	return out
}
