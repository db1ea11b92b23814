package aitools

import (
	"strings"

	lo "github.com/samber/lo"
)

// NotFound is the column index of an unresolved field.
const NotFound = -1

// Candidates lists, per semantic field, header phrasings in priority order.
type Candidates struct {
	Tools        []string
	Frequency    []string
	TimeSaved    []string
	Productivity []string
}

// DefaultCandidates covers the wording of the common survey tools' exports.
var DefaultCandidates = Candidates{
	Tools:        []string{"ai tools", "ai tools ides", "tools used", "tools", "ai tools used", "tool"},
	Frequency:    []string{"frequency", "usage frequency", "how often", "usage", "frequently", "how frequently"},
	TimeSaved:    []string{"time saved", "time saved per week", "hours saved", "weekly time saved", "how much time", "save you per week"},
	Productivity: []string{"productivity", "rating", "self reported", "likert"},
}

// Columns holds resolved header indices; NotFound when absent.
type Columns struct {
	Tools        int
	Frequency    int
	TimeSaved    int
	Productivity int
}

// ResolveColumn returns the index of the first header containing the first
// candidate that matches anything, or NotFound. Candidates are tried in order,
// headers left to right.
func ResolveColumn(headers []string, candidates []string) int {
	normalized := lo.Map(headers, func(h string, _ int) string { return NormalizeHeader(h) })
	for _, candidate := range candidates {
		target := NormalizeHeader(candidate)
		if target == "" {
			continue
		}
		if _, index, ok := lo.FindIndexOf(normalized, func(h string) bool { return strings.Contains(h, target) }); ok {
			return index
		}
	}
	return NotFound
}

// ResolveColumns binds every field against the header row. Tools, frequency
// and time saved are required; productivity is optional.
func ResolveColumns(headers []string, c Candidates) (Columns, error) {
	cols := Columns{
		Tools:        ResolveColumn(headers, c.Tools),
		Frequency:    ResolveColumn(headers, c.Frequency),
		TimeSaved:    ResolveColumn(headers, c.TimeSaved),
		Productivity: ResolveColumn(headers, c.Productivity),
	}
	var missing []string
	if cols.Tools == NotFound {
		missing = append(missing, "tools used")
	}
	if cols.Frequency == NotFound {
		missing = append(missing, "usage frequency")
	}
	if cols.TimeSaved == NotFound {
		missing = append(missing, "time saved per week")
	}
	if len(missing) > 0 {
		return cols, &MissingColumnsError{Missing: missing}
	}
	return cols, nil
}

func (c Columns) headers(row []string) ResolvedHeaders {
	return ResolvedHeaders{
		Tools:        headerText(cell(row, c.Tools)),
		Frequency:    headerText(cell(row, c.Frequency)),
		TimeSaved:    headerText(cell(row, c.TimeSaved)),
		Productivity: headerText(cell(row, c.Productivity)),
	}
}

func headerText(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
}

// cell returns row[i], or "" when the row is short or i is NotFound.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
