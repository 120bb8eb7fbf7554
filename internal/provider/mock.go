package provider

import (
	"context"
	"encoding/json"
	"time"

	"github.com/persuasion-games/persuade/internal/models"
)

// MockProvider is an offline strategy source for testing the pipeline
// without any API calls. It always proposes full revelation, which is valid
// for every scenario and optimal for some.
type MockProvider struct {
	modelID string
}

// NewMockProvider creates a mock provider. modelID is recorded in results
// but otherwise unused.
func NewMockProvider(modelID string) *MockProvider {
	return &MockProvider{modelID: modelID}
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Initialize(ctx context.Context) error { return nil }

// GenerateScheme emits the full-revelation table for the scenario as the
// JSON a well-behaved model would produce, then parses it back through the
// same boundary real output crosses.
func (m *MockProvider) GenerateScheme(ctx context.Context, sc *models.Scenario) (*Result, error) {
	start := time.Now()

	table := make(models.RawScheme, len(sc.States))
	for _, state := range sc.States {
		row := make(map[string]float64, len(sc.States))
		for _, signal := range sc.States {
			if signal == state {
				row[signal] = 1.0
			} else {
				row[signal] = 0.0
			}
		}
		table[state] = row
	}

	raw, err := json.Marshal(table)
	if err != nil {
		return nil, err
	}

	parsed, parseErr := ParseTable(string(raw))
	result := &Result{
		RawOutput:  string(raw),
		ModelID:    m.modelID,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if parseErr != nil {
		result.FailureMsg = parseErr.Error()
		return result, nil
	}
	result.Table = parsed
	return result, nil
}

func (m *MockProvider) Shutdown(ctx context.Context) error { return nil }
