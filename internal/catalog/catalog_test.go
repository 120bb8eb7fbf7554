package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/persuasion-games/persuade/internal/models"
)

func writeScenario(t *testing.T, dir, file, name string) {
	t.Helper()
	content := `name: ` + name + `
states: [A, B]
actions: [X, Y]
prior: [0.5, 0.5]
sender_utility:
  - [1.0, 1.0]
  - [0.0, 0.0]
receiver_utility:
  - [1.0, -1.0]
  - [0.0, 0.0]
optimum_utility: 1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
}

func TestLoad_ResolvesGlobs(t *testing.T) {
	dir := t.TempDir()
	scDir := filepath.Join(dir, "scenarios")
	require.NoError(t, os.MkdirAll(scDir, 0755))
	writeScenario(t, scDir, "first.yaml", "First")
	writeScenario(t, scDir, "second.yaml", "Second")

	exp := &models.Experiment{Scenarios: []string{"scenarios/*.yaml"}}
	scenarios, err := Load(exp, dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	require.Equal(t, "First", scenarios[0].Name)
	require.Equal(t, "Second", scenarios[1].Name)
}

func TestLoad_NoMatches(t *testing.T) {
	exp := &models.Experiment{Scenarios: []string{"missing/*.yaml"}}
	_, err := Load(exp, t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no scenario files matched")
}

func TestLoad_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "a.yaml", "Twin")
	writeScenario(t, dir, "b.yaml", "Twin")

	exp := &models.Experiment{Scenarios: []string{"*.yaml"}}
	_, err := Load(exp, dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Twin")
}

func TestLoad_MalformedScenarioFailsWholeLoad(t *testing.T) {
	dir := t.TempDir()
	writeScenario(t, dir, "good.yaml", "Good")
	bad := `name: Broken
states: [A, B]
actions: [X]
prior: [0.9, 0.9]
sender_utility:
  - [1.0, 1.0]
receiver_utility:
  - [1.0, 1.0]
optimum_utility: 1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zbad.yaml"), []byte(bad), 0644))

	exp := &models.Experiment{Scenarios: []string{"*.yaml"}}
	_, err := Load(exp, dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Broken")
}
