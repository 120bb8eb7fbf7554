package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/persuasion-games/persuade/internal/catalog"
	"github.com/persuasion-games/persuade/internal/models"
	"github.com/persuasion-games/persuade/internal/orchestration"
	"github.com/persuasion-games/persuade/internal/provider"
	"github.com/persuasion-games/persuade/internal/reporting"
)

var (
	outputPath    string
	junitPath     string
	verbose       bool
	parallel      bool
	workers       int
	runsOverride  int
	modelOverride string
	format        string
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <experiment.yaml>",
		Short: "Run a persuasion benchmark experiment",
		Long: `Run a benchmark experiment from an experiment file.

The experiment file names the strategy provider and the scenario files to
evaluate. Each scenario is played for the configured number of runs; every
generated scheme is validated and scored against the theoretical optimum
and the full-revelation and no-revelation baselines.`,
		Args: cobra.ExactArgs(1),
		RunE: runCommandE,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV file for per-run results (.gz for gzip)")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Output JUnit XML file for CI systems")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output with per-run progress")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Evaluate scenarios concurrently")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent workers (default: 4, requires --parallel)")
	cmd.Flags().IntVar(&runsOverride, "runs", 0, "Runs per scenario (overrides experiment config)")
	cmd.Flags().StringVar(&modelOverride, "model", "", "Model to use (overrides experiment config)")
	cmd.Flags().StringVar(&format, "format", "default", "Output format: default, markdown")

	return cmd
}

func runCommandE(_ *cobra.Command, args []string) error {
	expPath := args[0]

	exp, err := models.LoadExperiment(expPath)
	if err != nil {
		return fmt.Errorf("failed to load experiment: %w", err)
	}

	// CLI flags override experiment config
	if parallel {
		exp.Config.Concurrent = true
	}
	if workers > 0 {
		exp.Config.Workers = workers
	}
	if runsOverride > 0 {
		exp.Config.RunsPerScenario = runsOverride
	}
	if modelOverride != "" {
		exp.Provider.Model = modelOverride
	}

	baseDir := filepath.Dir(expPath)
	scenarios, err := catalog.Load(exp, baseDir)
	if err != nil {
		return fmt.Errorf("failed to load scenarios: %w", err)
	}

	source, err := provider.Create(exp.Provider, exp.Config.TimeoutSec)
	if err != nil {
		return err
	}

	runner := orchestration.NewRunner(exp, source, orchestration.WithVerbose(verbose))
	if verbose {
		runner.OnProgress(verboseProgressListener)
	} else {
		runner.OnProgress(simpleProgressListener)
	}

	fmt.Printf("Running experiment: %s\n", exp.Name)
	fmt.Printf("Provider: %s\n", exp.Provider.Kind)
	if exp.Provider.Model != "" {
		fmt.Printf("Model: %s\n", exp.Provider.Model)
	}
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Runs per scenario: %d\n", exp.Config.RunsPerScenario)
	if exp.Config.Concurrent {
		w := exp.Config.Workers
		if w <= 0 {
			w = 4
		}
		fmt.Printf("Parallel: %d workers\n", w)
	}
	fmt.Println()

	outcome, err := runner.RunExperiment(context.Background(), scenarios)
	if err != nil {
		return fmt.Errorf("experiment failed: %w", err)
	}

	switch format {
	case "markdown":
		fmt.Print(FormatMarkdownReport(outcome))
	case "default":
		printSummary(outcome)
	default:
		return fmt.Errorf("unknown output format: %s (supported: default, markdown)", format)
	}

	if outputPath != "" {
		if err := reporting.WriteCSVFile(outputPath, outcome); err != nil {
			return fmt.Errorf("failed to save output: %w", err)
		}
		fmt.Printf("\nResults saved to: %s\n", outputPath)
	}
	if junitPath != "" {
		if err := reporting.WriteJUnitFile(junitPath, outcome); err != nil {
			return fmt.Errorf("failed to save junit output: %w", err)
		}
		fmt.Printf("JUnit report saved to: %s\n", junitPath)
	}

	// Return invalid schemes as an error so the caller can set the exit code
	if invalid := outcome.TotalRuns - outcome.ValidRuns; invalid > 0 {
		return &InvalidSchemeError{
			Message: fmt.Sprintf("experiment completed with %d invalid scheme(s) out of %d run(s)", invalid, outcome.TotalRuns),
		}
	}

	return nil
}
