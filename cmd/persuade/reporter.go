package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/persuasion-games/persuade/internal/metrics"
	"github.com/persuasion-games/persuade/internal/models"
	"github.com/persuasion-games/persuade/internal/orchestration"
)

// formatDuration formats a duration in a consistent, human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// fmtOptional renders an optional metric, "-" when undefined.
func fmtOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.4f", *v)
}

func verboseProgressListener(event orchestration.ProgressEvent) {
	switch event.EventType {
	case orchestration.EventExperimentStart:
		fmt.Printf("Starting experiment with %d scenario(s)...\n\n", event.TotalScenarios)
	case orchestration.EventScenarioStart:
		fmt.Printf("[%d/%d] Evaluating scenario: %s\n", event.ScenarioNum, event.TotalScenarios, event.Scenario)
	case orchestration.EventRunComplete:
		status := "valid"
		if !event.Valid {
			status = "invalid"
		}
		duration := time.Duration(event.DurationMs) * time.Millisecond
		fmt.Printf("  Run %d/%d: %s (%v)\n", event.RunNum, event.TotalRuns, status, duration)
	case orchestration.EventScenarioComplete:
		fmt.Printf("  Scenario %s done\n\n", event.Scenario)
	case orchestration.EventExperimentComplete:
		duration := time.Duration(event.DurationMs) * time.Millisecond
		fmt.Printf("Experiment completed in %v\n\n", duration)
	}
}

func simpleProgressListener(event orchestration.ProgressEvent) {
	if event.EventType == orchestration.EventScenarioComplete {
		fmt.Printf("✓ [%d/%d] %s\n", event.ScenarioNum, event.TotalScenarios, event.Scenario)
	}
}

func printSummary(outcome *models.ExperimentOutcome) {
	fmt.Println("=" + strings.Repeat("=", 50))
	fmt.Println(" EXPERIMENT RESULTS")
	fmt.Println("=" + strings.Repeat("=", 50))
	fmt.Println()

	fmt.Printf("Total Runs:      %d\n", outcome.TotalRuns)
	fmt.Printf("Valid Schemes:   %d\n", outcome.ValidRuns)
	fmt.Printf("Invalid Schemes: %d\n", outcome.TotalRuns-outcome.ValidRuns)
	fmt.Printf("Validity Rate:   %.1f%%\n", outcome.SchemeValidityRate*100)

	duration := time.Duration(outcome.DurationMs) * time.Millisecond
	fmt.Printf("Duration:        %v\n", formatDuration(duration))
	fmt.Println()

	// Per-scenario breakdown
	fmt.Println("-" + strings.Repeat("-", 50))
	fmt.Println(" PER-SCENARIO BREAKDOWN")
	fmt.Println("-" + strings.Repeat("-", 50))
	for _, sc := range outcome.Scenarios {
		agg := sc.Aggregate
		icon := "✓"
		if agg.ValidRuns < agg.TotalRuns {
			icon = "✗"
		}
		fmt.Printf("  %s %s  [%d/%d valid]\n", icon, sc.Scenario, agg.ValidRuns, agg.TotalRuns)
		fmt.Printf("      optimum=%.4f  full_rev=%.4f  no_rev=%.4f\n",
			sc.OptimumUtility, sc.FullRevelationUtility, sc.NoRevelationUtility)
		fmt.Printf("      mean_utility=%s  mean_gap=%s  mean_rpl=%s\n",
			fmtOptional(agg.MeanSenderUtility),
			fmtOptional(agg.MeanOptimalityGap),
			fmtOptional(agg.MeanRPL))
		if ci := metrics.UtilityCI(sc.Records, 0.95); ci != nil {
			fmt.Printf("      utility 95%% CI: [%.4f, %.4f]\n", ci.Lower, ci.Upper)
		}
	}
	fmt.Println()

	// Show rejected runs
	if outcome.ValidRuns < outcome.TotalRuns {
		fmt.Println("Rejected Schemes:")
		for _, rec := range outcome.AllRecords() {
			if !rec.IsValidScheme {
				fmt.Printf("  - %s run %d: %s\n", rec.Scenario, rec.Run, rec.Rejection)
			}
		}
		fmt.Println()
	}
}

// FormatMarkdownReport formats an ExperimentOutcome as markdown, suitable
// for pasting into a PR or issue.
func FormatMarkdownReport(outcome *models.ExperimentOutcome) string {
	var b strings.Builder

	duration := time.Duration(outcome.DurationMs) * time.Millisecond

	b.WriteString("## Persuasion Benchmark Results\n\n")

	statusIcon := "✅ All schemes valid"
	if outcome.ValidRuns < outcome.TotalRuns {
		statusIcon = fmt.Sprintf("❌ %d invalid scheme(s)", outcome.TotalRuns-outcome.ValidRuns)
	}
	b.WriteString(fmt.Sprintf("**Status:** %s | **SVR:** %.1f%% | **Duration:** %s\n\n",
		statusIcon, outcome.SchemeValidityRate*100, formatDuration(duration)))

	b.WriteString(fmt.Sprintf("- **Provider:** %s\n", outcome.Provider))
	if outcome.ModelID != "" {
		b.WriteString(fmt.Sprintf("- **Model:** %s\n", outcome.ModelID))
	}
	b.WriteString(fmt.Sprintf("- **Runs:** %d total, %d valid\n\n", outcome.TotalRuns, outcome.ValidRuns))

	b.WriteString("### Scenario Results\n\n")
	b.WriteString("| Scenario | Valid | Mean Utility | Optimum | Mean Gap | Mean RPL |\n")
	b.WriteString("|----------|-------|--------------|---------|----------|----------|\n")

	for _, sc := range outcome.Scenarios {
		agg := sc.Aggregate
		b.WriteString(fmt.Sprintf("| %s | %d/%d | %s | %.4f | %s | %s |\n",
			sc.Scenario,
			agg.ValidRuns, agg.TotalRuns,
			fmtOptional(agg.MeanSenderUtility),
			sc.OptimumUtility,
			fmtOptional(agg.MeanOptimalityGap),
			fmtOptional(agg.MeanRPL)))
	}
	b.WriteString("\n")

	// Rejection breakdown
	if outcome.ValidRuns < outcome.TotalRuns {
		b.WriteString("### Rejected Schemes\n\n")
		for _, rec := range outcome.AllRecords() {
			if !rec.IsValidScheme {
				b.WriteString(fmt.Sprintf("- **%s** run %d: `%s`\n", rec.Scenario, rec.Run, rec.Rejection))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	b.WriteString(fmt.Sprintf("**Experiment:** %s | **Timestamp:** %s\n",
		outcome.Experiment, outcome.Timestamp.Format(time.RFC3339)))

	return b.String()
}
