// Package wizard collects scenario metadata interactively and renders a
// scenario YAML skeleton for the author to finish.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ScenarioDraft holds the fields collected during the interactive wizard.
// The utility matrices are scaffolded as zeros: they need real modeling, not
// a form field.
type ScenarioDraft struct {
	Name        string
	Description string
	States      []string
	Actions     []string
}

const scenarioTemplate = `name: {{ .Name }}
{{- if .Description }}
description: {{ .Description }}
{{- end }}

states:
{{- range .States }}
  - {{ . }}
{{- end }}

actions:
{{- range .Actions }}
  - {{ . }}
{{- end }}

# Uniform prior over states; adjust to the scenario's beliefs.
prior: [{{ .UniformPrior }}]

# Sender payoff matrix, one row per action, one column per state.
sender_utility:
{{- range .Actions }}
  - [{{ $.ZeroRow }}]
{{- end }}

# Receiver payoff matrix, one row per action, one column per state.
receiver_utility:
{{- range .Actions }}
  - [{{ $.ZeroRow }}]
{{- end }}

# Sender utility under the optimal signaling scheme. This is ground truth
# computed by hand; the harness never derives it.
optimum_utility: 0.0
`

// RunScenarioWizard runs an interactive huh form to collect scenario
// metadata. If initialName is non-empty, it pre-populates the name field.
func RunScenarioWizard(in io.Reader, out io.Writer, initialName string) (*ScenarioDraft, error) {
	var (
		name        = initialName
		description string
		statesRaw   string
		actionsRaw  string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Scenario name").
				Description("A short identifier for this persuasion game").
				Placeholder("QualityControl").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Description("One line on what the game models (optional)").
				Value(&description),
			huh.NewInput().
				Title("World states").
				Description("Comma-separated state labels").
				Placeholder("High Quality, Low Quality").
				Value(&statesRaw).
				Validate(requireList("at least one state is required")),
			huh.NewInput().
				Title("Receiver actions").
				Description("Comma-separated action labels").
				Placeholder("Buy, Dont Buy").
				Value(&actionsRaw).
				Validate(requireList("at least one action is required")),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	return &ScenarioDraft{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		States:      splitAndTrim(statesRaw),
		Actions:     splitAndTrim(actionsRaw),
	}, nil
}

// DefaultDraft returns a non-interactive scaffold for CI and piped use.
func DefaultDraft(name string) *ScenarioDraft {
	return &ScenarioDraft{
		Name:    name,
		States:  []string{"StateA", "StateB"},
		Actions: []string{"Accept", "Reject"},
	}
}

// GenerateScenarioYAML renders the draft as a scenario YAML skeleton.
func GenerateScenarioYAML(draft *ScenarioDraft) (string, error) {
	tmpl, err := template.New("scenario").Parse(scenarioTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	n := len(draft.States)
	if n == 0 {
		return "", fmt.Errorf("draft has no states")
	}
	uniform := make([]string, n)
	zeros := make([]string, n)
	for i := range draft.States {
		uniform[i] = strconv.FormatFloat(1.0/float64(n), 'g', 6, 64)
		zeros[i] = "0.0"
	}

	data := struct {
		*ScenarioDraft
		UniformPrior string
		ZeroRow      string
	}{
		ScenarioDraft: draft,
		UniformPrior:  strings.Join(uniform, ", "),
		ZeroRow:       strings.Join(zeros, ", "),
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func requireList(msg string) func(string) error {
	return func(s string) error {
		if len(splitAndTrim(s)) == 0 {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
