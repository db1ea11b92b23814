package aitools

import (
	"regexp"
	"strconv"
	"strings"

	lo "github.com/samber/lo"
)

// DefaultMaxRows caps the data rows read from one survey.
const DefaultMaxRows = 50000

// Options tune an Engine. The zero value is not useful; start from DefaultOptions.
type Options struct {
	MaxRows    int
	TopN       int
	Candidates Candidates
}

func DefaultOptions() Options {
	return Options{
		MaxRows:    DefaultMaxRows,
		TopN:       6,
		Candidates: DefaultCandidates,
	}
}

// Engine turns a parsed survey into a Summary. It holds no state between
// calls; one Summarize call is one synchronous pass.
type Engine struct {
	opts Options
}

func New(opts Options) *Engine {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultMaxRows
	}
	if opts.TopN <= 0 {
		opts.TopN = 6
	}
	return &Engine{opts: opts}
}

// Summarize runs the default engine.
func Summarize(rows [][]string, cfg Config) (*Summary, error) {
	return New(DefaultOptions()).Summarize(rows, cfg)
}

// Summarize folds every data row (rows[1:], up to MaxRows) into totals and
// builds the report. rows[0] is the header row. cfg is read, never modified.
//
// Only three conditions fail the pass: no rows, an invalid config, and a
// header row missing a required column. Bad cells are counted and zeroed.
func (e *Engine) Summarize(rows [][]string, cfg Config) (*Summary, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	headers := rows[0]
	cols, err := ResolveColumns(headers, e.opts.Candidates)
	if err != nil {
		return nil, err
	}

	data := rows[1:]
	ignored := 0
	if len(data) > e.opts.MaxRows {
		ignored = len(data) - e.opts.MaxRows
		data = data[:e.opts.MaxRows]
	}

	acc := newAccumulator(cols, newLookup(cfg), cfg)
	for _, row := range data {
		acc.add(row)
	}

	meta := acc.meta()
	meta.RowsAnalyzed = len(data)
	meta.RowsIgnored = ignored
	meta.Truncated = ignored > 0
	meta.Columns = cols.headers(headers)

	return &Summary{
		Report: buildReport(acc, cfg, e.opts, ignored),
		Meta:   meta,
	}, nil
}

// totals is an insertion-ordered running sum per key, so ties in later
// stable sorts keep first-seen order.
type totals struct {
	keys []string
	sums map[string]float64
}

func newTotals() *totals { return &totals{sums: map[string]float64{}} }

func (t *totals) add(key string, v float64) {
	if _, ok := t.sums[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.sums[key] += v
}

func (t *totals) get(key string) float64 { return t.sums[key] }

// accumulator is the mutable state of one pass.
type accumulator struct {
	cols   Columns
	lookup lookup
	cfg    Config

	totalCost        float64
	totalWeeklyHours float64
	respondents      int
	toolMentions     int

	costByTool       *totals
	valueByTool      *totals
	hoursByFrequency *totals

	unknownTools []string
	unknownSeen  map[string]struct{}

	missingTimeSaved  int
	unmappedTimeSaved int
	missingFrequency  int

	weeklyHours  []float64
	productivity []float64
}

func newAccumulator(cols Columns, l lookup, cfg Config) *accumulator {
	return &accumulator{
		cols:             cols,
		lookup:           l,
		cfg:              cfg,
		costByTool:       newTotals(),
		valueByTool:      newTotals(),
		hoursByFrequency: newTotals(),
		unknownSeen:      map[string]struct{}{},
	}
}

func (a *accumulator) add(row []string) {
	if len(row) == 0 {
		return
	}
	a.respondents++

	weekly := a.hoursSaved(cell(row, a.cols.TimeSaved))
	a.totalWeeklyHours += weekly
	a.weeklyHours = append(a.weeklyHours, weekly)

	if frequency := strings.TrimSpace(cell(row, a.cols.Frequency)); frequency != "" {
		a.hoursByFrequency.add(frequency, weekly)
	} else {
		a.missingFrequency++
	}

	if score, ok := rating(cell(row, a.cols.Productivity)); ok {
		a.productivity = append(a.productivity, score)
	}

	tools := SplitTools(cell(row, a.cols.Tools))
	if len(tools) == 0 {
		return
	}
	a.toolMentions += len(tools)

	for _, tool := range tools {
		cost, ok := a.lookup.toolCost(tool)
		if !ok {
			a.unknown(tool)
		}
		a.costByTool.add(tool, cost)
		a.totalCost += cost
	}

	// Value is split equally across the respondent's tools, not by price.
	if weekly > 0 {
		monthlyValue := weekly * a.cfg.WeeksPerMonth * a.cfg.AvgEngineerCostPerHour
		perTool := monthlyValue / float64(len(tools))
		for _, tool := range tools {
			a.valueByTool.add(tool, perTool)
		}
	}
}

// hoursSaved maps the time-saved cell to weekly hours. Blank and unmatched
// answers count as zero and are tallied separately.
func (a *accumulator) hoursSaved(answer string) float64 {
	if strings.TrimSpace(answer) == "" {
		a.missingTimeSaved++
		return 0
	}
	hours, ok := a.lookup.weeklyHours(answer)
	if !ok {
		a.unmappedTimeSaved++
		return 0
	}
	return hours
}

func (a *accumulator) unknown(tool string) {
	if _, seen := a.unknownSeen[tool]; seen {
		return
	}
	a.unknownSeen[tool] = struct{}{}
	a.unknownTools = append(a.unknownTools, tool)
}

// SplitTools reads a multi-select tools cell: split on ';' then ',', trim,
// apply aliases, drop blanks and repeats. Order of first mention is kept.
func SplitTools(cell string) []string {
	parts := lo.FlatMap(strings.Split(cell, ";"), func(entry string, _ int) []string {
		return strings.Split(entry, ",")
	})
	tools := lo.Map(parts, func(p string, _ int) string { return CanonicalTool(p) })
	return lo.Uniq(lo.Compact(tools))
}

var leadingNumber = regexp.MustCompile(`^-?\d+(?:\.\d+)?`)

// rating reads the leading number of a Likert answer such as "4 - Agree".
func rating(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
