package aitools

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumn(t *testing.T) {
	headers := []string{
		"Timestamp",
		"Which AI tools / IDEs do you use?",
		"How often do you use them?",
		"How much time do they save you per week?",
		"Productivity rating (1-5)",
	}

	tests := []struct {
		name       string
		candidates []string
		want       int
	}{
		{"first candidate wins", DefaultCandidates.Tools, 1},
		{"priority order over header order", []string{"how much time", "timestamp"}, 3},
		{"substring of normalized header", []string{"save you per week"}, 3},
		{"case and punctuation insensitive", []string{"AI-Tools"}, 1},
		{"blank candidate ignored", []string{"", "  ", "productivity"}, 4},
		{"no match", []string{"department"}, NotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveColumn(headers, tt.candidates))
		})
	}
}

func TestResolveColumn_LeftmostHeaderWins(t *testing.T) {
	headers := []string{"Tools (primary)", "Tools (secondary)"}
	assert.Equal(t, 0, ResolveColumn(headers, []string{"tools"}))
}

func TestResolveColumns(t *testing.T) {
	cols, err := ResolveColumns([]string{"\ufeffTools", "Frequency", "Time Saved"}, DefaultCandidates)
	require.NoError(t, err)
	assert.Equal(t, Columns{Tools: 0, Frequency: 1, TimeSaved: 2, Productivity: NotFound}, cols)
}

func TestResolveColumns_Missing(t *testing.T) {
	_, err := ResolveColumns([]string{"Tools", "Department"}, DefaultCandidates)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumns))

	var mce *MissingColumnsError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, []string{"usage frequency", "time saved per week"}, mce.Missing)
	assert.Contains(t, err.Error(), "tools used, usage frequency, and time saved per week")
}
