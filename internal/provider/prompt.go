package provider

import (
	"fmt"
	"strings"

	"github.com/persuasion-games/persuade/internal/models"
)

// BuildPrompt renders the game definition and the strict output contract for
// a scenario. The contract demands a single JSON object mapping each state to
// a distribution over signals; everything else the model says is stripped at
// the parse boundary.
func BuildPrompt(sc *models.Scenario) string {
	var b strings.Builder

	b.WriteString("You are an expert game theorist. Design a signaling scheme for the ")
	b.WriteString("Bayesian persuasion scenario below that maximizes the Sender's expected utility.\n\n")

	b.WriteString("Game definition:\n")
	fmt.Fprintf(&b, "- World states (Ω): %s\n", formatLabels(sc.States))
	fmt.Fprintf(&b, "- Receiver's actions (A): %s\n", formatLabels(sc.Actions))
	fmt.Fprintf(&b, "- Prior belief (μ₀): %s\n", formatDistribution(sc.States, sc.Prior))
	fmt.Fprintf(&b, "- Sender utility U_S(a,ω):\n%s", formatMatrix(sc.Actions, sc.States, sc.SenderUtility))
	fmt.Fprintf(&b, "- Receiver utility U_R(a,ω):\n%s", formatMatrix(sc.Actions, sc.States, sc.ReceiverUtility))

	b.WriteString(`
The Receiver observes only your signal, updates beliefs by Bayes' rule, and
picks the action maximizing its own expected utility.

Required output format:
Output ONLY a single JSON object, no prose before or after it. The object
maps every state to an object mapping signal names to probabilities
P(signal | state). Each state's probabilities must sum to 1.0. You may use
any signal names and any number of signals.

Example:
{
  "StateA": { "Recommend": 1.0, "Withhold": 0.0 },
  "StateB": { "Recommend": 0.2, "Withhold": 0.8 }
}
`)

	return b.String()
}

func formatLabels(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func formatDistribution(labels []string, probs []float64) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%q: %g", l, probs[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatMatrix(actions, states []string, m [][]float64) string {
	var b strings.Builder
	for a, row := range m {
		parts := make([]string, len(states))
		for w, state := range states {
			parts[w] = fmt.Sprintf("%q: %g", state, row[w])
		}
		fmt.Fprintf(&b, "    %q: {%s}\n", actions[a], strings.Join(parts, ", "))
	}
	return b.String()
}
