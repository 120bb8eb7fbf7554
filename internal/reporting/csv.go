// Package reporting exports experiment outcomes for external consumers: a
// per-run CSV for analysis and JUnit XML for CI systems.
package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/persuasion-games/persuade/internal/models"
)

// csvHeader lists the exported columns, one row per (scenario, run).
var csvHeader = []string{
	"scenario",
	"run",
	"provider",
	"is_valid_scheme",
	"rejection",
	"u_llm",
	"u_theoretical_optimum",
	"u_full_revelation",
	"u_no_revelation",
	"u_worst_baseline",
	"optimality_gap",
	"rpl",
	"duration_ms",
}

// WriteCSV writes all run records of an outcome as CSV. Undefined metrics
// become empty cells, never zeros.
func WriteCSV(w io.Writer, outcome *models.ExperimentOutcome) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rec := range outcome.AllRecords() {
		row := []string{
			rec.Scenario,
			strconv.Itoa(rec.Run),
			rec.Provider,
			strconv.FormatBool(rec.IsValidScheme),
			string(rec.Rejection),
			formatOptional(rec.SenderUtility),
			formatFloat(rec.OptimumUtility),
			formatFloat(rec.FullRevelationUtility),
			formatFloat(rec.NoRevelationUtility),
			formatFloat(rec.WorstBaselineUtility),
			formatOptional(rec.OptimalityGap),
			formatOptional(rec.RPL),
			strconv.FormatInt(rec.DurationMs, 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the CSV to path. A path ending in .gz is
// gzip-compressed.
func WriteCSVFile(path string, outcome *models.ExperimentOutcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		if err := WriteCSV(gz, outcome); err != nil {
			f.Close() //nolint:errcheck
			return err
		}
		if err := gz.Close(); err != nil {
			f.Close() //nolint:errcheck
			return fmt.Errorf("closing gzip stream: %w", err)
		}
	} else if err := WriteCSV(f, outcome); err != nil {
		f.Close() //nolint:errcheck
		return err
	}

	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
