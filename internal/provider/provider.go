// Package provider hosts the strategy sources that propose signaling schemes
// for the referee to score. The evaluation core depends only on the
// StrategyProvider interface; concrete providers (Copilot SDK, offline mock)
// are selected by the experiment config.
package provider

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/persuasion-games/persuade/internal/models"
)

// Result is what a provider hands back for one generation attempt. A failed
// attempt is still a Result: transport and parse failures surface as an
// already-invalid scheme, never as raw text or an error the runner must
// interpret.
type Result struct {
	// Table is the parsed candidate table, nil when generation failed.
	Table models.RawScheme

	// RawOutput is the provider's verbatim output, kept for diagnostics.
	RawOutput string

	// FailureMsg is non-empty when no table could be produced.
	FailureMsg string

	ModelID    string
	DurationMs int64
}

// Failed reports whether the attempt produced no usable table.
func (r *Result) Failed() bool {
	return r.Table == nil
}

// StrategyProvider generates a candidate signaling scheme for a scenario.
// GenerateScheme returns an error only for infrastructure faults that should
// abort the experiment; a model that answers nonsense is a normal Result.
type StrategyProvider interface {
	// Name returns the provider tag recorded in results.
	Name() string

	// Initialize sets up the provider.
	Initialize(ctx context.Context) error

	// GenerateScheme asks the provider for a scheme for the scenario.
	GenerateScheme(ctx context.Context, sc *models.Scenario) (*Result, error)

	// Shutdown releases provider resources.
	Shutdown(ctx context.Context) error
}

// Create builds a provider from an experiment's provider config.
func Create(cfg models.ProviderConfig, timeoutSec int) (StrategyProvider, error) {
	switch cfg.Kind {
	case "copilot":
		var params struct {
			LogLevel string `mapstructure:"log_level"`
		}
		if err := mapstructure.Decode(cfg.Params, &params); err != nil {
			return nil, fmt.Errorf("copilot provider params: %w", err)
		}
		return NewCopilotProviderBuilder(cfg.Model, timeoutSec, &CopilotProviderOptions{
			LogLevel: params.LogLevel,
		}).Build(), nil
	case "mock":
		return NewMockProvider(cfg.Model), nil
	default:
		return nil, fmt.Errorf("%q is not a known provider kind", cfg.Kind)
	}
}
