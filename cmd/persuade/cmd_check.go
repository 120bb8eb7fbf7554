package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persuasion-games/persuade/internal/models"
	"github.com/persuasion-games/persuade/internal/validation"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.yaml>...",
		Short: "Validate scenario and experiment files",
		Long: `Validate scenario and experiment YAML files without running anything.

Each file is checked against its JSON Schema first, then against the
semantic rules (prior sums to 1, utility matrices are total, scenario globs
resolve). The file kind is detected from its content: a file with a
"provider" section is an experiment, anything else is a scenario.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheckE,
	}
	return cmd
}

func runCheckE(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		errs := checkFile(path)
		if len(errs) == 0 {
			fmt.Fprintf(w, "✓ %s\n", path) //nolint:errcheck
			continue
		}
		failed++
		fmt.Fprintf(w, "✗ %s\n", path) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(w, "    %s\n", e) //nolint:errcheck
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	return nil
}

// checkFile validates one YAML file, returning one message per problem.
func checkFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{err.Error()}
	}

	if isExperimentFile(data) {
		if errs := validation.ValidateExperimentBytes(data); len(errs) > 0 {
			return errs
		}
		exp, err := models.LoadExperiment(path)
		if err != nil {
			return []string{err.Error()}
		}
		// Semantic check beyond the schema: the globs must match something.
		files, err := exp.ResolveScenarioFiles(filepath.Dir(path))
		if err != nil {
			return []string{err.Error()}
		}
		if len(files) == 0 {
			return []string{fmt.Sprintf("experiment %q: scenario patterns match no files", exp.Name)}
		}
		return nil
	}

	if errs := validation.ValidateScenarioBytes(data); len(errs) > 0 {
		return errs
	}
	if _, err := models.LoadScenario(path); err != nil {
		return []string{err.Error()}
	}
	return nil
}

// isExperimentFile reports whether the YAML document has a provider section.
func isExperimentFile(data []byte) bool {
	var probe struct {
		Provider *models.ProviderConfig `yaml:"provider"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false
	}
	return probe.Provider != nil
}
