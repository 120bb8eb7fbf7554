package models

// RawScheme is the untrusted, label-keyed table shape that strategy providers
// hand to the validator: state label → signal label → P(signal|state). It is
// exactly what a well-behaved model should emit as JSON.
type RawScheme map[string]map[string]float64

// Scheme is a validated signaling scheme: a conditional probability table
// P(m|ω) with one row per scenario state and one column per signal. Rows are
// aligned with Scenario.States; column order is given by Signals.
type Scheme struct {
	// Signals is the ordered signal set M. It may be smaller or larger than
	// the state set (No Revelation collapses it to one signal).
	Signals []string `json:"signals"`

	// Rows is P(m|ω) indexed [state][signal]. Each row sums to 1 within the
	// validator's tolerance.
	Rows [][]float64 `json:"rows"`
}

// RejectionCode classifies why a candidate table was rejected.
type RejectionCode string

const (
	// RejectionWrongShape: the table is not one row per state, or a row has
	// no signals at all.
	RejectionWrongShape RejectionCode = "wrong_shape"

	// RejectionNegativeProbability: an entry lies outside [0,1].
	RejectionNegativeProbability RejectionCode = "negative_probability"

	// RejectionRowNotNormalized: a row does not sum to 1 within tolerance.
	RejectionRowNotNormalized RejectionCode = "row_not_normalized"

	// RejectionUnparsable: the provider could not produce a table at all
	// (transport failure or free-form output with no probability table).
	RejectionUnparsable RejectionCode = "unparsable_output"
)

// SchemeRejection explains why a candidate scheme is invalid. Rejection is an
// expected, scoreable outcome, not an error: evaluation continues and the run
// counts toward the validity-rate denominator.
type SchemeRejection struct {
	Code   RejectionCode `json:"code"`
	Detail string        `json:"detail,omitempty"`
}

func (r *SchemeRejection) String() string {
	if r.Detail == "" {
		return string(r.Code)
	}
	return string(r.Code) + ": " + r.Detail
}
