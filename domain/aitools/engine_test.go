package aitools

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var surveyHeader = []string{"Tools", "Frequency", "Time Saved"}

func survey(rows ...[]string) [][]string {
	return append([][]string{surveyHeader}, rows...)
}

func TestSummarize_SingleRespondent(t *testing.T) {
	s, err := Summarize(survey([]string{"Cursor;Cursor", "Daily", "1-3 hour"}), DefaultConfig())
	require.NoError(t, err)

	r := s.Report
	assert.Equal(t, Totals{
		MonthlyAISpendUSD:    20,
		MonthlyHoursSaved:    8.66,
		MonthlyValueSavedUSD: 692.8,
		NetImpactUSD:         672.8,
	}, r.Totals)
	assert.Equal(t, []ToolCostRow{{Tool: "Cursor", MonthlyCostUSD: 20}}, r.Breakdowns.CostByTool)
	assert.Equal(t, []ToolValueRow{{Tool: "Cursor", MonthlyValueUSD: 692.8}}, r.Breakdowns.ValueByTool)
	assert.Equal(t, []FrequencyHoursRow{{Frequency: "Daily", MonthlyHoursSaved: 8.66}}, r.Breakdowns.HoursSavedByFrequency)

	require.Len(t, r.Breakdowns.TopToolsByROI, 1)
	top := r.Breakdowns.TopToolsByROI[0]
	assert.Equal(t, "Cursor", top.Tool)
	assert.Equal(t, 672.8, top.MonthlyNetValueUSD)
	require.NotNil(t, top.ROI)
	assert.Equal(t, 33.64, *top.ROI)

	assert.Equal(t, 1, s.Meta.Respondents)
	assert.Equal(t, 1, s.Meta.ToolMentions)
	assert.Empty(t, r.Assumptions.UnknownTools)
	assert.NotNil(t, r.Assumptions.UnknownTools)
}

func TestSummarize_ZeroHoursAnswerIsMapped(t *testing.T) {
	s, err := Summarize(survey([]string{"Cursor", "Weekly", "I do not feel they save me time"}), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.Report.Totals.MonthlyHoursSaved)
	assert.Equal(t, 0, s.Meta.MissingTimeSaved)
	assert.Equal(t, 0, s.Meta.UnmappedTimeSaved)
	assert.Equal(t, []ToolValueRow{{Tool: "Cursor", MonthlyValueUSD: 0}}, s.Report.Breakdowns.ValueByTool)
}

func TestSummarize_UnknownTool(t *testing.T) {
	s, err := Summarize(survey([]string{"Foo IDE, Cursor", "Daily", "1-3 hours"}), DefaultConfig())
	require.NoError(t, err)

	r := s.Report
	assert.Equal(t, []string{"Foo IDE"}, r.Assumptions.UnknownTools)
	assert.Contains(t, r.Assumptions.Notes, "Unknown tools detected: Foo IDE")
	assert.Equal(t, []ToolCostRow{
		{Tool: "Cursor", MonthlyCostUSD: 20},
		{Tool: "Foo IDE", MonthlyCostUSD: 0},
	}, r.Breakdowns.CostByTool)
	assert.Equal(t, []ToolValueRow{
		{Tool: "Cursor", MonthlyValueUSD: 346.4},
		{Tool: "Foo IDE", MonthlyValueUSD: 346.4},
	}, r.Breakdowns.ValueByTool)

	roi := r.Breakdowns.TopToolsByROI
	require.Len(t, roi, 2)
	assert.Equal(t, "Foo IDE", roi[0].Tool)
	assert.Equal(t, 346.4, roi[0].MonthlyNetValueUSD)
	assert.Nil(t, roi[0].ROI)
	assert.Equal(t, "Cursor", roi[1].Tool)
	assert.NotNil(t, roi[1].ROI)
}

func TestSummarize_MissingTimeSavedColumn(t *testing.T) {
	rows := [][]string{
		{"Tools", "Frequency", "Minutes"},
		{"Cursor", "Daily", "10"},
	}
	s, err := Summarize(rows, DefaultConfig())
	assert.Nil(t, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingColumns))
}

func TestSummarize_EmptyInput(t *testing.T) {
	_, err := Summarize(nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSummarize_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeeksPerMonth = 0
	_, err := Summarize(survey([]string{"Cursor", "Daily", "1-3 hours"}), cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSummarize_DataQualityCounters(t *testing.T) {
	s, err := Summarize(survey(
		[]string{"Cursor", "", "1-3 hours"},
		[]string{"Cursor", "Daily", ""},
		[]string{"Cursor", "Daily", "about an afternoon"},
		[]string{"Cursor", "Daily"},
		[]string{},
	), DefaultConfig())
	require.NoError(t, err)

	m := s.Meta
	assert.Equal(t, 4, m.Respondents)
	assert.Equal(t, 1, m.MissingFrequency)
	assert.Equal(t, 2, m.MissingTimeSaved, "blank and short rows count as missing")
	assert.Equal(t, 1, m.UnmappedTimeSaved)

	notes := s.Report.Assumptions.Notes
	assert.Contains(t, notes, "Missing time saved responses assumed 0: 2")
	assert.Contains(t, notes, "Missing usage frequency responses: 1")
	assert.Contains(t, notes, "Unmapped time saved responses assumed 0: 1")

	// The row without a frequency still counts towards the totals.
	assert.Equal(t, round2(2*4.33), s.Report.Totals.MonthlyHoursSaved)
	assert.Equal(t, []FrequencyHoursRow{{Frequency: "Daily", MonthlyHoursSaved: 0}}, s.Report.Breakdowns.HoursSavedByFrequency)
}

func TestSummarize_NoToolsStillCountsHours(t *testing.T) {
	s, err := Summarize(survey([]string{" ; , ", "Daily", "3-5 hours"}), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, round2(4*4.33*80), s.Report.Totals.MonthlyValueSavedUSD)
	assert.Empty(t, s.Report.Breakdowns.ValueByTool)
	assert.Empty(t, s.Report.Breakdowns.CostByTool)
	assert.Equal(t, 0, s.Meta.ToolMentions)
}

func TestSummarize_AliasesAndCaseInsensitiveCosts(t *testing.T) {
	s, err := Summarize(survey(
		[]string{"ChatGPT (OpenAI); Cursor CLI", "Daily", "1-2 hours"},
		[]string{"github copilot", "Weekly", "1-2 hours"},
	), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []ToolCostRow{
		{Tool: "ChatGPT Plus", MonthlyCostUSD: 20},
		{Tool: "Cursor", MonthlyCostUSD: 20},
		{Tool: "github copilot", MonthlyCostUSD: 19},
	}, s.Report.Breakdowns.CostByTool)
	assert.Empty(t, s.Report.Assumptions.UnknownTools)
	assert.Equal(t, 59.0, s.Report.Totals.MonthlyAISpendUSD)
}

func TestSummarize_CostConservation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ToolCosts = append(cfg.ToolCosts, ToolCost{Name: "Windsurf", MonthlyCostUSD: 15.33})
	s, err := Summarize(survey(
		[]string{"Cursor, Windsurf", "Daily", "1-2 hours"},
		[]string{"Claude Code (Anthropic);GitHub Copilot", "Weekly", "3-5 hours"},
		[]string{"Windsurf", "Monthly", "Less than 1 hour"},
		[]string{"Antigravity", "Daily", "More than 5 hours"},
	), cfg)
	require.NoError(t, err)

	var sum float64
	for _, row := range s.Report.Breakdowns.CostByTool {
		sum += row.MonthlyCostUSD
	}
	assert.InDelta(t, s.Report.Totals.MonthlyAISpendUSD, sum, 0.005)
}

func TestSummarize_Ranking(t *testing.T) {
	cfg := Config{WeeksPerMonth: 4, AvgEngineerCostPerHour: 10}
	var rows [][]string
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("Tool%d", i)
		cfg.ToolCosts = append(cfg.ToolCosts, ToolCost{Name: name, MonthlyCostUSD: float64(i)})
		rows = append(rows, []string{name, "Daily", "1 hour"})
	}
	cfg.TimeSavedMap = []TimeSaved{{Label: "1 hour", Hours: 1}}

	s, err := Summarize(survey(rows...), cfg)
	require.NoError(t, err)

	costs := s.Report.Breakdowns.CostByTool
	require.Len(t, costs, 8)
	assert.Equal(t, "Tool7", costs[0].Tool)
	assert.Equal(t, "Tool0", costs[7].Tool)

	// Every tool earns 40; net value falls as cost rises.
	roi := s.Report.Breakdowns.TopToolsByROI
	require.Len(t, roi, 6)
	assert.Equal(t, "Tool0", roi[0].Tool)
	assert.Nil(t, roi[0].ROI)
	assert.Equal(t, "Tool5", roi[5].Tool)
	require.NotNil(t, roi[1].ROI)
	assert.Equal(t, 39.0, *roi[1].ROI)
}

func TestSummarize_StableTies(t *testing.T) {
	s, err := Summarize(survey(
		[]string{"ChatGPT Plus", "Weekly", "1-2 hours"},
		[]string{"Cursor", "Daily", "1-2 hours"},
	), DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "ChatGPT Plus", s.Report.Breakdowns.CostByTool[0].Tool)
	assert.Equal(t, "Cursor", s.Report.Breakdowns.CostByTool[1].Tool)
	assert.Equal(t, "Weekly", s.Report.Breakdowns.HoursSavedByFrequency[0].Frequency)
}

func TestSummarize_RowCap(t *testing.T) {
	e := New(Options{MaxRows: 2, Candidates: DefaultCandidates})
	s, err := e.Summarize(survey(
		[]string{"Cursor", "Daily", "1-2 hours"},
		[]string{"Cursor", "Daily", "1-2 hours"},
		[]string{"Cursor", "Daily", "1-2 hours"},
	), DefaultConfig())
	require.NoError(t, err)

	assert.True(t, s.Meta.Truncated)
	assert.Equal(t, 2, s.Meta.RowsAnalyzed)
	assert.Equal(t, 1, s.Meta.RowsIgnored)
	assert.Equal(t, 40.0, s.Report.Totals.MonthlyAISpendUSD)
	assert.Contains(t, s.Report.Assumptions.Notes, "Only the first 2 responses were analyzed; 1 rows ignored.")
}

func TestSummarize_DoesNotMutateConfig(t *testing.T) {
	cfg := DefaultConfig()
	before := cfg.Clone()
	_, err := Summarize(survey([]string{"Cursor, Foo", "Daily", "1-3 hours"}), cfg)
	require.NoError(t, err)
	assert.Equal(t, before, cfg)
}

func TestSummarize_Deterministic(t *testing.T) {
	rows := survey(
		[]string{"Cursor; Foo IDE", "Daily", "1-3 hours"},
		[]string{"GitHub Copilot, Bar", "Weekly", "More than 5 hours"},
		[]string{"Baz", "", "nope"},
	)
	first, err := Summarize(rows, DefaultConfig())
	require.NoError(t, err)
	second, err := Summarize(rows, DefaultConfig())
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestSummarize_MetaStatistics(t *testing.T) {
	rows := [][]string{
		{"AI tools used", "Usage frequency", "Weekly time saved", "Productivity rating"},
		{"Cursor", "Daily", "1-3 hours", "4 - Agree"},
		{"Cursor", "Daily", "I do not feel they save me time", "5"},
		{"Cursor", "Daily", "More than 5 hours", "n/a"},
	}
	s, err := Summarize(rows, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ResolvedHeaders{
		Tools:        "AI tools used",
		Frequency:    "Usage frequency",
		TimeSaved:    "Weekly time saved",
		Productivity: "Productivity rating",
	}, s.Meta.Columns)
	assert.Equal(t, 2.67, s.Meta.WeeklyHours.Mean)
	assert.Equal(t, 2.0, s.Meta.WeeklyHours.Median)
	assert.GreaterOrEqual(t, s.Meta.WeeklyHours.P90, 2.0)
	assert.LessOrEqual(t, s.Meta.WeeklyHours.P90, 6.0)
	require.NotNil(t, s.Meta.ProductivityMean)
	assert.Equal(t, 4.5, *s.Meta.ProductivityMean)
}

func TestSplitTools(t *testing.T) {
	assert.Equal(t, []string{"Cursor", "GitHub Copilot", "Foo"}, SplitTools(" Cursor ; GitHub Copilot,Foo;Cursor CLI, ,"))
	assert.Empty(t, SplitTools(""))
}
