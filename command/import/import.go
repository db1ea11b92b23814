package cmdimport

import (
	"ai-roi/connectors/source"
	"ai-roi/connectors/survey"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Run executes the import subcommand: download the survey export from
// -url (or SURVEY_URL) into the data directory so calculate can pick it up.
func Run(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	src := fs.String("url", os.Getenv("SURVEY_URL"), "survey export URL (defaults to SURVEY_URL)")
	out := fs.String("out", "", "destination file (default data/survey.csv, or data/survey.xlsx for workbook URLs)")
	timeout := fs.Duration("timeout", 2*time.Minute, "overall download timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *src == "" {
		fmt.Fprintln(os.Stderr, "-url is required when SURVEY_URL is not set.")
		slog.Error("import.validation.error", "reason", "missing url")
		return fmt.Errorf("missing required -url or SURVEY_URL")
	}
	if *out == "" {
		*out = defaultOut(*src)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	creds := source.CredentialsFromEnv()
	slog.Info("import.start", "url", redact(*src), "out", *out, "oauth", creds.TokenURL != "", "token", creds.Token != "")
	b, err := source.NewClient(ctx, creds).Fetch(ctx, *src)
	if err != nil {
		slog.Error("import.fetch.error", "url", redact(*src), "error", err)
		return err
	}

	rows, err := survey.Decode(*out, b)
	if err != nil {
		slog.Error("survey.decode.error", "url", redact(*src), "error", err)
		return err
	}
	if len(rows) == 0 {
		slog.Warn("import.empty", "url", redact(*src))
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		slog.Error("import.write.error", "out", *out, "error", err)
		return fmt.Errorf("write %s: %w", *out, err)
	}
	slog.Info("import.done", "out", *out, "bytes", len(b), "rows", len(rows))
	return nil
}

// defaultOut keeps workbook downloads as .xlsx so they decode as workbooks.
func defaultOut(raw string) string {
	name := "survey.csv"
	if u, err := url.Parse(raw); err == nil {
		switch strings.ToLower(path.Ext(u.Path)) {
		case ".xlsx", ".xlsm":
			name = "survey.xlsx"
		}
	}
	return filepath.Join("data", name)
}

// redact drops query strings, which often carry export keys.
func redact(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	u.User = nil
	return u.String()
}
