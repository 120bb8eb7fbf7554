package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/persuasion-games/persuade/internal/game"
	"github.com/persuasion-games/persuade/internal/models"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <scenario.yaml>...",
		Short: "List scenarios with their baseline utilities",
		Long: `List scenarios in a summary table.

For each scenario the table shows the game dimensions, the authored
theoretical optimum, and the Sender utility of the two fixed baselines
(full revelation and no revelation).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runListE,
	}
	return cmd
}

func runListE(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	var scenarios []*models.Scenario
	for _, path := range args {
		sc, err := models.LoadScenario(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, sc)
	}

	// Compute dynamic name column width from the longest scenario name.
	const minNameWidth = 10
	nameWidth := minNameWidth
	for _, sc := range scenarios {
		if n := runewidth.StringWidth(sc.Name); n > nameWidth {
			nameWidth = n
		}
	}

	const colDims = 8
	const colNum = 10
	totalWidth := nameWidth + colDims + 3*colNum + 8 // 8 = 4 gaps × 2 spaces

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Scenario", nameWidth),
		padRight("|Ω|×|A|", colDims),
		padRight("Optimum", colNum),
		padRight("Full Rev", colNum),
		"No Rev")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for _, sc := range scenarios {
		uFull := game.SenderExpectedUtility(sc, game.FullRevelation(sc))
		uNoRev := game.SenderExpectedUtility(sc, game.NoRevelation(sc))

		dims := fmt.Sprintf("%d×%d", len(sc.States), len(sc.Actions))
		fmt.Fprintf(w, "%s  %s  %s  %s  %.4f\n", //nolint:errcheck
			padRight(sc.Name, nameWidth),
			padRight(dims, colDims),
			padRight(fmt.Sprintf("%.4f", sc.OptimumUtility), colNum),
			padRight(fmt.Sprintf("%.4f", uFull), colNum),
			uNoRev)
	}

	return nil
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
