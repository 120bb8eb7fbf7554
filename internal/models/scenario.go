package models

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// PriorTolerance is the slack allowed when checking that a prior sums to 1.
const PriorTolerance = 1e-6

// Scenario is an immutable description of one persuasion game: the world
// states, the Receiver's actions, the shared prior, and both utility
// matrices. The theoretical optimum is supplied as metadata, never derived.
type Scenario struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// States is the ordered set Ω of world states.
	States []string `yaml:"states" json:"states"`

	// Actions is the ordered set A of actions available to the Receiver.
	Actions []string `yaml:"actions" json:"actions"`

	// Prior is μ₀, aligned with States.
	Prior []float64 `yaml:"prior" json:"prior"`

	// SenderUtility is U_S indexed [action][state].
	SenderUtility [][]float64 `yaml:"sender_utility" json:"sender_utility"`

	// ReceiverUtility is U_R indexed [action][state].
	ReceiverUtility [][]float64 `yaml:"receiver_utility" json:"receiver_utility"`

	// OptimumUtility is the pre-computed Sender utility of the theoretically
	// optimal scheme for this scenario. It is ground truth supplied by the
	// scenario author.
	OptimumUtility float64 `yaml:"optimum_utility" json:"optimum_utility"`
}

// LoadScenario loads a scenario from a YAML file and validates it. A
// malformed scenario is a configuration defect: the error returned here is
// fatal for the scenario and surfaces before any evaluation runs.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	return &sc, nil
}

// Validate checks the structural invariants: non-empty state and action sets,
// a prior that is a probability distribution over States, and total utility
// matrices of shape |A|×|Ω|.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.States) == 0 {
		return fmt.Errorf("scenario %q has no states", s.Name)
	}
	if len(s.Actions) == 0 {
		return fmt.Errorf("scenario %q has no actions", s.Name)
	}

	if len(s.Prior) != len(s.States) {
		return fmt.Errorf("scenario %q: prior has %d entries, want %d (one per state)",
			s.Name, len(s.Prior), len(s.States))
	}

	sum := 0.0
	for i, p := range s.Prior {
		if p < 0 {
			return fmt.Errorf("scenario %q: prior[%d] = %v is negative", s.Name, i, p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > PriorTolerance {
		return fmt.Errorf("scenario %q: prior sums to %v, want 1", s.Name, sum)
	}

	if err := s.validateMatrix("sender_utility", s.SenderUtility); err != nil {
		return err
	}
	if err := s.validateMatrix("receiver_utility", s.ReceiverUtility); err != nil {
		return err
	}

	return nil
}

func (s *Scenario) validateMatrix(name string, m [][]float64) error {
	if len(m) != len(s.Actions) {
		return fmt.Errorf("scenario %q: %s has %d rows, want %d (one per action)",
			s.Name, name, len(m), len(s.Actions))
	}
	for a, row := range m {
		if len(row) != len(s.States) {
			return fmt.Errorf("scenario %q: %s row %d (%s) has %d entries, want %d (one per state)",
				s.Name, name, a, s.Actions[a], len(row), len(s.States))
		}
	}
	return nil
}

// StateIndex returns the index of the named state, or -1.
func (s *Scenario) StateIndex(label string) int {
	for i, st := range s.States {
		if st == label {
			return i
		}
	}
	return -1
}
