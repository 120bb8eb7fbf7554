package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testScenarioYAML = `name: QualityControl
states: [High Quality, Low Quality]
actions: [Buy, Dont Buy]
prior: [0.3, 0.7]
sender_utility:
  - [10.0, 10.0]
  - [0.0, 0.0]
receiver_utility:
  - [5.0, -5.0]
  - [0.0, 0.0]
optimum_utility: 6.0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIsExperimentFile(t *testing.T) {
	require.True(t, isExperimentFile([]byte("name: e\nprovider:\n  kind: mock\n")))
	require.False(t, isExperimentFile([]byte(testScenarioYAML)))
	require.False(t, isExperimentFile([]byte(":::not yaml")))
}

func TestCheckFile_ValidScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", testScenarioYAML)
	require.Empty(t, checkFile(path))
}

func TestCheckFile_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", "name: Broken\nstates: [A]\n")
	errs := checkFile(path)
	require.NotEmpty(t, errs)
}

func TestCheckFile_SemanticViolation(t *testing.T) {
	// Passes the schema but the prior does not sum to 1.
	yaml := `name: Broken
states: [A, B]
actions: [X]
prior: [0.9, 0.9]
sender_utility:
  - [1.0, 1.0]
receiver_utility:
  - [1.0, 1.0]
optimum_utility: 1.0
`
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", yaml)
	errs := checkFile(path)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0], "prior")
}

func TestCheckFile_ExperimentWithScenarios(t *testing.T) {
	dir := t.TempDir()
	scDir := filepath.Join(dir, "scenarios")
	require.NoError(t, os.MkdirAll(scDir, 0755))
	writeFile(t, scDir, "q.yaml", testScenarioYAML)

	exp := `name: smoke
provider:
  kind: mock
config:
  runs_per_scenario: 1
  timeout_seconds: 30
scenarios:
  - "scenarios/*.yaml"
`
	path := writeFile(t, dir, "experiment.yaml", exp)
	require.Empty(t, checkFile(path))
}

func TestCheckFile_ExperimentWithNoMatches(t *testing.T) {
	dir := t.TempDir()
	exp := `name: smoke
provider:
  kind: mock
config:
  runs_per_scenario: 1
  timeout_seconds: 30
scenarios:
  - "missing/*.yaml"
`
	path := writeFile(t, dir, "experiment.yaml", exp)
	errs := checkFile(path)
	require.NotEmpty(t, errs)
	require.Contains(t, errs[0], "match no files")
}

func TestCheckCommand_MixedFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", testScenarioYAML)
	bad := writeFile(t, dir, "bad.yaml", "name: Broken\n")

	cmd := newCheckCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{good, bad})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, out.String(), "✓ "+good)
	require.Contains(t, out.String(), "✗ "+bad)
}

func TestCheckCommand_AllValid(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.yaml", testScenarioYAML)

	cmd := newCheckCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{good})

	require.NoError(t, cmd.Execute())
}
