package main

import (
	cmdcalculate "ai-roi/command/calculate"
	cmdimport "ai-roi/command/import"
	cmdweb "ai-roi/command/web"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// AI tools survey economics.
// Usage:
//   ai-roi import [-url <export url>] [-out data/survey.csv]
//   ai-roi calculate [-in data/survey.csv] [-data data]
//   ai-roi web [-addr :8080] [-data ./data] [-ui ./ui/dist]
// Notes:
// - import downloads the survey export (SURVEY_URL, optional SURVEY_TOKEN or OAuth2 client credentials).
// - calculate prices the survey with the ai_tools section of the config and writes data/ai_summary.json
//   plus the breakdown CSVs.
// - web serves the breakdowns and accepts live uploads and assumption edits.

func main() {
	// .env is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}

	args := os.Args
	// Initialize slog logger (text to stderr)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "import":
			if err := cmdimport.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "calculate":
			if err := cmdcalculate.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "web":
			if err := cmdweb.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: ai-roi import [-url <url>] [-out <file>] | calculate [-in <file>] [-data ./data] | web [-addr :8080] [-data ./data]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml), SURVEY_URL/SURVEY_TOKEN for import")
	os.Exit(2)
}
