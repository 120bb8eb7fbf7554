// Package catalog resolves and loads scenario definitions for an experiment.
package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/persuasion-games/persuade/internal/models"
)

// Load resolves the experiment's scenario globs relative to baseDir and loads
// every matching scenario file. A malformed scenario is a configuration
// defect and fails the whole load: nothing should be evaluated against a
// catalog that is partially broken.
func Load(exp *models.Experiment, baseDir string) ([]*models.Scenario, error) {
	if baseDir == "" {
		baseDir = "."
	}

	files, err := exp.ResolveScenarioFiles(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolving scenario patterns: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scenario files matched patterns %v in %s", exp.Scenarios, baseDir)
	}

	seen := map[string]string{}
	scenarios := make([]*models.Scenario, 0, len(files))
	for _, path := range files {
		sc, err := models.LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[sc.Name]; ok {
			return nil, fmt.Errorf("scenario name %q defined in both %s and %s", sc.Name, prev, filepath.Base(path))
		}
		seen[sc.Name] = filepath.Base(path)
		scenarios = append(scenarios, sc)
	}

	return scenarios, nil
}
