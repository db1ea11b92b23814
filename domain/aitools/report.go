package aitools

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	lo "github.com/samber/lo"
)

var baseNotes = []string{
	"Unknown tools default to USD 0 monthly cost.",
	"Time saved uses conservative midpoints.",
	"Monthly value allocated equally across tools used per engineer.",
	"Estimates are directional, not accounting-grade.",
}

type toolTotal struct {
	tool  string
	total float64
}

type roiRow struct {
	tool string
	net  float64
	roi  *float64
}

func buildReport(a *accumulator, cfg Config, opts Options, ignored int) Report {
	wpm := cfg.WeeksPerMonth

	costRows := lo.Map(a.costByTool.keys, func(tool string, _ int) toolTotal {
		return toolTotal{tool: tool, total: a.costByTool.get(tool)}
	})
	sort.SliceStable(costRows, func(i, j int) bool { return costRows[i].total > costRows[j].total })

	freqRows := lo.Map(a.hoursByFrequency.keys, func(label string, _ int) toolTotal {
		return toolTotal{tool: label, total: a.hoursByFrequency.get(label) * wpm}
	})
	sort.SliceStable(freqRows, func(i, j int) bool { return freqRows[i].total > freqRows[j].total })

	roiRows := lo.Map(costRows, func(r toolTotal, _ int) roiRow {
		net := a.valueByTool.get(r.tool) - r.total
		row := roiRow{tool: r.tool, net: net}
		if r.total > 0 {
			roi := net / r.total
			row.roi = &roi
		}
		return row
	})
	sort.SliceStable(roiRows, func(i, j int) bool { return roiRows[i].net > roiRows[j].net })
	roiRows = lo.Slice(roiRows, 0, opts.TopN)

	monthlyHours := a.totalWeeklyHours * wpm
	monthlyValue := monthlyHours * cfg.AvgEngineerCostPerHour
	hoursMap, costsMap := cfg.echo()

	return Report{
		Totals: Totals{
			MonthlyAISpendUSD:    round2(a.totalCost),
			MonthlyHoursSaved:    round2(monthlyHours),
			MonthlyValueSavedUSD: round2(monthlyValue),
			NetImpactUSD:         round2(monthlyValue - a.totalCost),
		},
		Breakdowns: Breakdowns{
			CostByTool: lo.Map(costRows, func(r toolTotal, _ int) ToolCostRow {
				return ToolCostRow{Tool: r.tool, MonthlyCostUSD: round2(r.total)}
			}),
			HoursSavedByFrequency: lo.Map(freqRows, func(r toolTotal, _ int) FrequencyHoursRow {
				return FrequencyHoursRow{Frequency: r.tool, MonthlyHoursSaved: round2(r.total)}
			}),
			ValueByTool: lo.Map(costRows, func(r toolTotal, _ int) ToolValueRow {
				return ToolValueRow{Tool: r.tool, MonthlyValueUSD: round2(a.valueByTool.get(r.tool))}
			}),
			TopToolsByROI: lo.Map(roiRows, func(r roiRow, _ int) ToolROIRow {
				out := ToolROIRow{Tool: r.tool, MonthlyNetValueUSD: round2(r.net)}
				if r.roi != nil {
					v := round3(*r.roi)
					out.ROI = &v
				}
				return out
			}),
		},
		Assumptions: Assumptions{
			WeeksPerMonth:                 cfg.WeeksPerMonth,
			AverageEngineerCostPerHourUSD: cfg.AvgEngineerCostPerHour,
			TimeSavedMappingHoursPerWeek:  hoursMap,
			ToolCostsUSD:                  costsMap,
			UnknownTools:                  append([]string{}, a.unknownTools...),
			Notes:                         a.notes(opts, ignored),
		},
	}
}

func (a *accumulator) notes(opts Options, ignored int) []string {
	notes := append([]string{}, baseNotes...)
	if len(a.unknownTools) > 0 {
		notes = append(notes, "Unknown tools detected: "+strings.Join(a.unknownTools, ", "))
	}
	if a.missingTimeSaved > 0 {
		notes = append(notes, fmt.Sprintf("Missing time saved responses assumed 0: %d", a.missingTimeSaved))
	}
	if a.missingFrequency > 0 {
		notes = append(notes, fmt.Sprintf("Missing usage frequency responses: %d", a.missingFrequency))
	}
	if a.unmappedTimeSaved > 0 {
		notes = append(notes, fmt.Sprintf("Unmapped time saved responses assumed 0: %d", a.unmappedTimeSaved))
	}
	if ignored > 0 {
		notes = append(notes, fmt.Sprintf("Only the first %d responses were analyzed; %d rows ignored.", opts.MaxRows, ignored))
	}
	return notes
}

func (a *accumulator) meta() Meta {
	m := Meta{
		Respondents:       a.respondents,
		ToolMentions:      a.toolMentions,
		MissingTimeSaved:  a.missingTimeSaved,
		UnmappedTimeSaved: a.unmappedTimeSaved,
		MissingFrequency:  a.missingFrequency,
		WeeklyHours:       distribution(a.weeklyHours),
	}
	if mean, err := stats.Mean(a.productivity); err == nil {
		v := round2(mean)
		m.ProductivityMean = &v
	}
	return m
}

// distribution summarises per-respondent weekly hours; empty input yields zeros.
func distribution(data []float64) Distribution {
	var d Distribution
	if len(data) == 0 {
		return d
	}
	if mean, err := stats.Mean(data); err == nil {
		d.Mean = round2(mean)
	}
	if median, err := stats.Median(data); err == nil {
		d.Median = round2(median)
	}
	if p90, err := stats.Percentile(data, 90); err == nil {
		d.P90 = round2(p90)
	}
	return d
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
