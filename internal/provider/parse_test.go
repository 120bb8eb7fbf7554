package provider

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTable_BareJSON(t *testing.T) {
	output := `{"High Quality": {"buy": 1.0}, "Low Quality": {"buy": 0.4, "dont": 0.6}}`

	table, err := ParseTable(output)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, 1.0, table["High Quality"]["buy"])
	require.Equal(t, 0.6, table["Low Quality"]["dont"])
}

func TestParseTable_FencedCodeBlock(t *testing.T) {
	output := "Here is my signaling scheme:\n\n```json\n" +
		`{"A": {"m": 1.0}, "B": {"m": 1.0}}` +
		"\n```\n\nThis pools both states behind one signal."

	table, err := ParseTable(output)
	require.NoError(t, err)
	require.Equal(t, 1.0, table["A"]["m"])
	require.Equal(t, 1.0, table["B"]["m"])
}

func TestParseTable_UnlabeledFence(t *testing.T) {
	output := "```\n{\"A\": {\"m\": 1.0}}\n```"

	table, err := ParseTable(output)
	require.NoError(t, err)
	require.Equal(t, 1.0, table["A"]["m"])
}

func TestParseTable_SecondFenceWins(t *testing.T) {
	// The first fence holds commentary, the second the actual table.
	output := "```python\nprint('thinking')\n```\n\n```json\n{\"A\": {\"m\": 1.0}}\n```"

	table, err := ParseTable(output)
	require.NoError(t, err)
	require.Equal(t, 1.0, table["A"]["m"])
}

func TestParseTable_BraceSpanFallback(t *testing.T) {
	output := `Sure! My scheme is {"A": {"m1": 0.5, "m2": 0.5}} which maximizes utility.`

	table, err := ParseTable(output)
	require.NoError(t, err)
	require.Equal(t, 0.5, table["A"]["m1"])
}

func TestParseTable_Failures(t *testing.T) {
	cases := []struct {
		name   string
		output string
	}{
		{"empty output", ""},
		{"whitespace only", "  \n\t "},
		{"prose without json", "I refuse to answer."},
		{"non-numeric probabilities", `{"A": {"m": "high"}}`},
		{"empty object", `{}`},
		{"array not object", `[{"A": 1.0}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTable(tc.output)
			require.Error(t, err)
		})
	}
}
