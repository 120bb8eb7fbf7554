package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/persuasion-games/persuade/internal/models"
)

func promptScenario() *models.Scenario {
	return &models.Scenario{
		Name:    "QualityControl",
		States:  []string{"High Quality", "Low Quality"},
		Actions: []string{"Buy", "Dont Buy"},
		Prior:   []float64{0.3, 0.7},
		SenderUtility: [][]float64{
			{10, 10},
			{0, 0},
		},
		ReceiverUtility: [][]float64{
			{5, -5},
			{0, 0},
		},
		OptimumUtility: 6.0,
	}
}

func TestBuildPrompt_ContainsGameDefinition(t *testing.T) {
	prompt := BuildPrompt(promptScenario())

	require.Contains(t, prompt, `"High Quality"`)
	require.Contains(t, prompt, `"Low Quality"`)
	require.Contains(t, prompt, `"Buy"`)
	require.Contains(t, prompt, `"Dont Buy"`)
	require.Contains(t, prompt, "0.3")
	require.Contains(t, prompt, "0.7")
	require.Contains(t, prompt, "Bayes")
}

func TestBuildPrompt_StatesOutputContract(t *testing.T) {
	prompt := BuildPrompt(promptScenario())

	require.Contains(t, prompt, "single JSON object")
	require.Contains(t, prompt, "sum to 1.0")
	// The example block must itself be the demanded shape.
	require.Contains(t, prompt, `"Recommend": 1.0`)
}

func TestBuildPrompt_DoesNotLeakOptimum(t *testing.T) {
	prompt := BuildPrompt(promptScenario())

	// The authored optimum is referee metadata, not a hint for the model.
	require.False(t, strings.Contains(prompt, "6.0") && strings.Contains(prompt, "optimum"),
		"prompt must not reveal the theoretical optimum")
	require.NotContains(t, prompt, "optimum_utility")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	sc := promptScenario()
	require.Equal(t, BuildPrompt(sc), BuildPrompt(sc))
}
