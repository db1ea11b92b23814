package aitools

import (
	"fmt"
	"math"
	"strings"
)

const (
	DefaultWeeksPerMonth          = 4.33
	DefaultAvgEngineerCostPerHour = 80
)

// DefaultConfig returns the built-in seat prices and duration buckets.
func DefaultConfig() Config {
	return Config{
		WeeksPerMonth:          DefaultWeeksPerMonth,
		AvgEngineerCostPerHour: DefaultAvgEngineerCostPerHour,
		ToolCosts: []ToolCost{
			{Name: "Cursor", MonthlyCostUSD: 20},
			{Name: "Claude Code (Anthropic)", MonthlyCostUSD: 30},
			{Name: "GitHub Copilot", MonthlyCostUSD: 19},
			{Name: "ChatGPT Plus", MonthlyCostUSD: 20},
			{Name: "Antigravity", MonthlyCostUSD: 0},
		},
		TimeSavedMap: []TimeSaved{
			{Label: "Less than 1 hour", Hours: 0.5},
			{Label: "1-2 hours", Hours: 1.5},
			{Label: "1-3 hours", Hours: 2},
			{Label: "3-5 hours", Hours: 4},
			{Label: "More than 5 hours", Hours: 6},
			{Label: "I do not feel they save me time", Hours: 0},
		},
	}
}

// Clone returns a deep copy so callers can keep editing their own value.
func (c Config) Clone() Config {
	out := c
	out.ToolCosts = append([]ToolCost(nil), c.ToolCosts...)
	out.TimeSavedMap = append([]TimeSaved(nil), c.TimeSavedMap...)
	return out
}

// Validate checks the numeric invariants: weeks per month strictly positive,
// every money and hour value non-negative, nothing NaN or infinite.
func (c Config) Validate() error {
	if !finite(c.WeeksPerMonth) || c.WeeksPerMonth <= 0 {
		return fmt.Errorf("%w: weeksPerMonth must be > 0, got %v", ErrInvalidConfig, c.WeeksPerMonth)
	}
	if !finite(c.AvgEngineerCostPerHour) || c.AvgEngineerCostPerHour < 0 {
		return fmt.Errorf("%w: avgEngineerCostPerHour must be >= 0, got %v", ErrInvalidConfig, c.AvgEngineerCostPerHour)
	}
	for i, tc := range c.ToolCosts {
		if !finite(tc.MonthlyCostUSD) || tc.MonthlyCostUSD < 0 {
			return fmt.Errorf("%w: toolCosts[%d] %q: monthly_cost_usd must be >= 0, got %v", ErrInvalidConfig, i, tc.Name, tc.MonthlyCostUSD)
		}
	}
	for i, ts := range c.TimeSavedMap {
		if !finite(ts.Hours) || ts.Hours < 0 {
			return fmt.Errorf("%w: timeSavedMap[%d] %q: hours must be >= 0, got %v", ErrInvalidConfig, i, ts.Label, ts.Hours)
		}
	}
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// lookup is the effective form of a Config: tool prices keyed by ToolKey,
// hours keyed by CanonicalDuration. Blank names are dropped and the last
// entry for a key wins.
type lookup struct {
	toolCosts map[string]float64
	hours     map[string]float64
}

func newLookup(c Config) lookup {
	l := lookup{
		toolCosts: make(map[string]float64, len(c.ToolCosts)),
		hours:     make(map[string]float64, len(c.TimeSavedMap)),
	}
	for _, tc := range c.ToolCosts {
		if key := ToolKey(tc.Name); key != "" {
			l.toolCosts[key] = tc.MonthlyCostUSD
		}
	}
	for _, ts := range c.TimeSavedMap {
		if key := CanonicalDuration(ts.Label); key != "" {
			l.hours[key] = ts.Hours
		}
	}
	return l
}

func (l lookup) toolCost(name string) (float64, bool) {
	cost, ok := l.toolCosts[ToolKey(name)]
	return cost, ok
}

// weeklyHours maps a non-empty duration answer; ok is false when no bucket matches.
func (l lookup) weeklyHours(answer string) (float64, bool) {
	hours, ok := l.hours[CanonicalDuration(answer)]
	return hours, ok
}

// echo renders the configuration for the assumptions block, keyed by the
// display text the user typed.
func (c Config) echo() (map[string]float64, map[string]ToolCostAssumption) {
	hours := make(map[string]float64, len(c.TimeSavedMap))
	for _, ts := range c.TimeSavedMap {
		if label := strings.TrimSpace(ts.Label); label != "" {
			hours[label] = ts.Hours
		}
	}
	costs := make(map[string]ToolCostAssumption, len(c.ToolCosts))
	for _, tc := range c.ToolCosts {
		if name := NormalizeToolName(tc.Name); name != "" {
			costs[name] = ToolCostAssumption{MonthlyCostUSD: tc.MonthlyCostUSD}
		}
	}
	return hours, costs
}
