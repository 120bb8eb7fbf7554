package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Experiment is the configuration record for one benchmark invocation. It
// replaces ad-hoc global settings: provider choice, run count, and the
// scenario list all travel together through the evaluation loop.
type Experiment struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	Provider ProviderConfig   `yaml:"provider"`
	Config   ExperimentConfig `yaml:"config"`

	// Scenarios are glob patterns for scenario YAML files, resolved relative
	// to the experiment file's directory.
	Scenarios []string `yaml:"scenarios"`
}

// ProviderConfig selects and parameterizes the strategy source.
type ProviderConfig struct {
	// Kind is the provider implementation: "copilot" or "mock".
	Kind string `yaml:"kind"`

	// Model is the model identifier passed to the provider, when it applies.
	Model string `yaml:"model,omitempty"`

	// Params holds provider-specific settings, decoded by the provider.
	Params map[string]any `yaml:"params,omitempty"`
}

// ExperimentConfig controls execution behavior.
type ExperimentConfig struct {
	RunsPerScenario int  `yaml:"runs_per_scenario"`
	TimeoutSec      int  `yaml:"timeout_seconds"`
	Concurrent      bool `yaml:"parallel,omitempty"`
	Workers         int  `yaml:"max_workers,omitempty"`
}

// LoadExperiment loads an experiment spec from a YAML file.
func LoadExperiment(path string) (*Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var exp Experiment
	if err := yaml.Unmarshal(data, &exp); err != nil {
		return nil, fmt.Errorf("parsing experiment %s: %w", path, err)
	}

	if err := exp.Validate(); err != nil {
		return nil, err
	}

	return &exp, nil
}

// Validate checks that the experiment is runnable.
func (e *Experiment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("experiment has no name")
	}
	if e.Provider.Kind == "" {
		return fmt.Errorf("experiment %q: provider.kind is required", e.Name)
	}
	if e.Config.RunsPerScenario < 1 {
		return fmt.Errorf("runs_per_scenario must be at least 1, got %d", e.Config.RunsPerScenario)
	}
	if e.Config.TimeoutSec < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1, got %d", e.Config.TimeoutSec)
	}
	if len(e.Scenarios) == 0 {
		return fmt.Errorf("experiment %q lists no scenarios", e.Name)
	}
	return nil
}

// ResolveScenarioFiles expands the scenario glob patterns relative to baseDir.
// A file matched by more than one pattern appears once.
func (e *Experiment) ResolveScenarioFiles(baseDir string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range e.Scenarios {
		matches, err := filepath.Glob(filepath.Join(baseDir, pattern))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	return files, nil
}
