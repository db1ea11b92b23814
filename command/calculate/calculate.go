package calculate

import (
	"ai-roi/connectors/config"
	ccsv "ai-roi/connectors/csv"
	"ai-roi/connectors/survey"
	"ai-roi/domain/aitools"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// SummaryFile is the JSON export written next to the breakdown CSVs.
const SummaryFile = "ai_summary.json"

// Run executes the calculate command: read the survey export, price it with
// the configured assumptions and write the summary plus breakdown CSVs.
func Run(args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	in := fs.String("in", filepath.Join("data", "survey.csv"), "survey export to read (.csv or .xlsx)")
	dataDir := fs.String("data", "data", "output directory")
	maxRows := fs.Int("max-rows", aitools.DefaultMaxRows, "maximum number of data rows analysed")
	topN := fs.Int("top", 6, "number of tools kept in the ROI ranking")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: unexpected arguments %v", fs.Args())
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		slog.Error("calculate.config.error", "error", err)
		return err
	}

	slog.Info("calculate.start", "in", *in, "data", *dataDir)
	rows, err := survey.ReadFile(*in)
	if err != nil {
		slog.Error("survey.decode.error", "path", *in, "error", err)
		return err
	}

	opts := aitools.DefaultOptions()
	opts.MaxRows = *maxRows
	opts.TopN = *topN
	sum, err := aitools.New(opts).Summarize(rows, cfg)
	if err != nil {
		slog.Error("calculate.summarize.error", "path", *in, "error", err)
		return err
	}
	slog.Info("calculate.summary",
		"respondents", sum.Meta.Respondents,
		"spend", sum.Report.Totals.MonthlyAISpendUSD,
		"value", sum.Report.Totals.MonthlyValueSavedUSD,
		"net", sum.Report.Totals.NetImpactUSD,
		"truncated", sum.Meta.Truncated,
	)

	if err := writeSummary(filepath.Join(*dataDir, SummaryFile), sum); err != nil {
		return err
	}
	if err := ccsv.WriteAllCSVs(*dataDir, sum.Report); err != nil {
		return err
	}
	slog.Info("calculate.done", "data", *dataDir)
	return nil
}

func writeSummary(path string, sum *aitools.Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	b, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
