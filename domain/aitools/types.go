package aitools

// Config holds the editable assumptions used to price a survey.
// JSON tags follow the dashboard editor payload, YAML tags the config.yml section.
type Config struct {
	WeeksPerMonth          float64     `json:"weeksPerMonth" yaml:"weeks_per_month"`
	AvgEngineerCostPerHour float64     `json:"avgEngineerCostPerHour" yaml:"avg_engineer_cost_per_hour"`
	ToolCosts              []ToolCost  `json:"toolCosts" yaml:"tool_costs"`
	TimeSavedMap           []TimeSaved `json:"timeSavedMap" yaml:"time_saved_map"`
}

// ToolCost is the monthly seat price of one tool.
type ToolCost struct {
	Name           string  `json:"name" yaml:"name"`
	MonthlyCostUSD float64 `json:"monthly_cost_usd" yaml:"monthly_cost_usd"`
}

// TimeSaved maps a duration answer to weekly hours.
type TimeSaved struct {
	Label string  `json:"label" yaml:"label"`
	Hours float64 `json:"hours" yaml:"hours"`
}

// Report is the summary handed to the dashboard. Field names are part of the
// export format and must stay stable.
type Report struct {
	Totals      Totals      `json:"totals"`
	Breakdowns  Breakdowns  `json:"breakdowns"`
	Assumptions Assumptions `json:"assumptions"`
}

type Totals struct {
	MonthlyAISpendUSD    float64 `json:"monthly_ai_spend_usd"`
	MonthlyHoursSaved    float64 `json:"monthly_hours_saved"`
	MonthlyValueSavedUSD float64 `json:"monthly_value_saved_usd"`
	NetImpactUSD         float64 `json:"net_impact_usd"`
}

type Breakdowns struct {
	CostByTool            []ToolCostRow      `json:"cost_by_tool"`
	HoursSavedByFrequency []FrequencyHoursRow `json:"hours_saved_by_frequency"`
	ValueByTool           []ToolValueRow     `json:"value_by_tool"`
	TopToolsByROI         []ToolROIRow       `json:"top_tools_by_roi"`
}

type ToolCostRow struct {
	Tool           string  `json:"tool"`
	MonthlyCostUSD float64 `json:"monthly_cost_usd"`
}

type FrequencyHoursRow struct {
	Frequency         string  `json:"frequency"`
	MonthlyHoursSaved float64 `json:"monthly_hours_saved"`
}

type ToolValueRow struct {
	Tool            string  `json:"tool"`
	MonthlyValueUSD float64 `json:"monthly_value_usd"`
}

// ToolROIRow ranks a tool by net monthly value. ROI is nil when the tool has
// no accumulated cost.
type ToolROIRow struct {
	Tool               string   `json:"tool"`
	MonthlyNetValueUSD float64  `json:"monthly_net_value_usd"`
	ROI                *float64 `json:"roi"`
}

type Assumptions struct {
	WeeksPerMonth                 float64                       `json:"weeks_per_month"`
	AverageEngineerCostPerHourUSD float64                       `json:"average_engineer_cost_per_hour_usd"`
	TimeSavedMappingHoursPerWeek  map[string]float64            `json:"time_saved_mapping_hours_per_week"`
	ToolCostsUSD                  map[string]ToolCostAssumption `json:"tool_costs_usd"`
	UnknownTools                  []string                      `json:"unknown_tools"`
	Notes                         []string                      `json:"notes"`
}

type ToolCostAssumption struct {
	MonthlyCostUSD float64 `json:"monthly_cost_usd"`
}

// Meta describes the summarization pass itself: how much of the file was
// used and how trustworthy the answers were. It is not part of the export.
type Meta struct {
	Respondents       int             `json:"respondents"`
	RowsAnalyzed      int             `json:"rows_analyzed"`
	RowsIgnored       int             `json:"rows_ignored"`
	Truncated         bool            `json:"truncated"`
	ToolMentions      int             `json:"tool_mentions"`
	MissingTimeSaved  int             `json:"missing_time_saved"`
	UnmappedTimeSaved int             `json:"unmapped_time_saved"`
	MissingFrequency  int             `json:"missing_frequency"`
	Columns           ResolvedHeaders `json:"columns"`
	WeeklyHours       Distribution    `json:"weekly_hours_saved"`
	ProductivityMean  *float64        `json:"productivity_mean"`
}

// ResolvedHeaders echoes the header text each semantic field was bound to.
type ResolvedHeaders struct {
	Tools        string `json:"tools"`
	Frequency    string `json:"frequency"`
	TimeSaved    string `json:"time_saved"`
	Productivity string `json:"productivity,omitempty"`
}

type Distribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// Summary bundles the exported report with pass metadata.
type Summary struct {
	Report Report `json:"report"`
	Meta   Meta   `json:"meta"`
}
