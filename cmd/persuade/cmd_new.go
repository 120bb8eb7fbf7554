package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/persuasion-games/persuade/internal/wizard"
)

func newNewCommand() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "new <scenario-name>",
		Short: "Create a new scenario file",
		Long: `Create a new scenario YAML file.

When running in a terminal (TTY), launches an interactive wizard to collect
the scenario's states and actions. In non-interactive environments (CI,
pipes), a two-state two-action skeleton is generated.

The generated file has a uniform prior and zeroed utility matrices; fill in
the payoffs and the hand-computed optimum before running an experiment.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newCommandE(cmd, args, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "dir", "d", ".", "Directory to create the scenario file in")

	return cmd
}

func newCommandE(cmd *cobra.Command, args []string, outputDir string) error {
	name := args[0]
	if err := validateScenarioName(name); err != nil {
		return err
	}

	// Check TTY from the command's input stream, not os.Stdin directly.
	inReader := cmd.InOrStdin()
	isTTY := false
	if f, ok := inReader.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}

	var draft *wizard.ScenarioDraft
	if isTTY {
		d, err := wizard.RunScenarioWizard(cmd.InOrStdin(), cmd.OutOrStdout(), name)
		if err != nil {
			return err
		}
		if d.Name != "" && d.Name != name {
			return fmt.Errorf("wizard name %q does not match CLI argument %q", d.Name, name)
		}
		d.Name = name
		draft = d
	} else {
		draft = wizard.DefaultDraft(name)
	}

	content, err := wizard.GenerateScenarioYAML(draft)
	if err != nil {
		return fmt.Errorf("failed to generate scenario: %w", err)
	}

	path := filepath.Join(outputDir, fileNameFor(name))
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)                                          //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "Fill in the utility matrices and optimum_utility, then run\n") //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  persuade check %s\n", path)                                 //nolint:errcheck

	return nil
}

// validateScenarioName rejects names with path-traversal characters.
func validateScenarioName(name string) error {
	if name == "" {
		return fmt.Errorf("scenario name must not be empty")
	}
	cleaned := filepath.Clean(name)
	if cleaned == ".." || strings.Contains(cleaned, "/") || strings.Contains(cleaned, "\\") {
		return fmt.Errorf("scenario name %q contains invalid path characters", name)
	}
	return nil
}

// fileNameFor converts a scenario name to a snake_case file name.
func fileNameFor(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s + ".yaml"
}
