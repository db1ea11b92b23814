package csv

import (
	"ai-roi/domain/aitools"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
)

// Breakdown file names written under the data directory.
const (
	CostByToolFile       = "ai_cost_by_tool.csv"
	ValueByToolFile      = "ai_value_by_tool.csv"
	HoursByFrequencyFile = "ai_hours_by_frequency.csv"
	TopROIFile           = "ai_top_tools_by_roi.csv"
)

// WriteAllCSVs writes every report breakdown into dir.
func WriteAllCSVs(dir string, r aitools.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := WriteCostByToolCSV(filepath.Join(dir, CostByToolFile), r.Breakdowns.CostByTool); err != nil {
		return err
	}
	if err := WriteValueByToolCSV(filepath.Join(dir, ValueByToolFile), r.Breakdowns.ValueByTool); err != nil {
		return err
	}
	if err := WriteHoursByFrequencyCSV(filepath.Join(dir, HoursByFrequencyFile), r.Breakdowns.HoursSavedByFrequency); err != nil {
		return err
	}
	if err := WriteTopROICSV(filepath.Join(dir, TopROIFile), r.Breakdowns.TopToolsByROI); err != nil {
		return err
	}
	return nil
}

func WriteCostByToolCSV(path string, rows []aitools.ToolCostRow) error {
	return writeCSV(path, []string{"tool", "monthly_cost_usd"}, len(rows), func(i int) []string {
		return []string{rows[i].Tool, formatFloat(rows[i].MonthlyCostUSD)}
	})
}

func WriteValueByToolCSV(path string, rows []aitools.ToolValueRow) error {
	return writeCSV(path, []string{"tool", "monthly_value_usd"}, len(rows), func(i int) []string {
		return []string{rows[i].Tool, formatFloat(rows[i].MonthlyValueUSD)}
	})
}

func WriteHoursByFrequencyCSV(path string, rows []aitools.FrequencyHoursRow) error {
	return writeCSV(path, []string{"frequency", "monthly_hours_saved"}, len(rows), func(i int) []string {
		return []string{rows[i].Frequency, formatFloat(rows[i].MonthlyHoursSaved)}
	})
}

// WriteTopROICSV leaves roi empty for tools without cost.
func WriteTopROICSV(path string, rows []aitools.ToolROIRow) error {
	return writeCSV(path, []string{"tool", "monthly_net_value_usd", "roi"}, len(rows), func(i int) []string {
		roi := ""
		if rows[i].ROI != nil {
			roi = formatFloat(*rows[i].ROI)
		}
		return []string{rows[i].Tool, formatFloat(rows[i].MonthlyNetValueUSD), roi}
	})
}

func writeCSV(path string, headers []string, n int, row func(i int) []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(headers); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
