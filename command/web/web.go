package web

import (
	"ai-roi/connectors/config"
	ccsv "ai-roi/connectors/csv"
	"ai-roi/domain/aitools"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// Run starts a small Echo web server exposing the survey economics APIs and an optional SPA dashboard.
//
// Usage:
//
//	ai-roi web [-addr :8080] [-data ./data] [-ui ./ui/dist]
//
// Endpoints:
//
//	POST /api/ai/survey              -> upload a survey export (multipart field "file")
//	GET  /api/ai/summary             -> last computed summary (404 if none)
//	GET  /api/ai/config              -> effective assumptions
//	PUT  /api/ai/config              -> replace assumptions, recompute the loaded survey
//	GET  /api/ai/cost_by_tool        -> <data>/ai_cost_by_tool.csv
//	GET  /api/ai/value_by_tool       -> <data>/ai_value_by_tool.csv
//	GET  /api/ai/hours_by_frequency  -> <data>/ai_hours_by_frequency.csv
//	GET  /api/ai/top_roi             -> <data>/ai_top_tools_by_roi.csv
//
// When -ui points to a built Vite app (index.html exists), static files are served at / and
// unknown routes fall back to index.html for SPA routing.
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	dataDir := fs.String("data", "./data", "directory containing CSV files")
	uiDir := fs.String("ui", "./ui/dist", "directory containing built UI (Vite dist)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(config.Path())
	if err != nil {
		return err
	}

	e := newServer(*dataDir, cfg)

	// Static UI (optional)
	indexPath := filepath.Join(*uiDir, "index.html")
	if fi, err := os.Stat(indexPath); err == nil && !fi.IsDir() {
		e.Static("/", *uiDir)
		e.GET("/", func(c echo.Context) error { return c.File(indexPath) })

		// Fallback to index.html for non-API 404s (SPA routing) while keeping static assets working
		e.HTTPErrorHandler = func(err error, c echo.Context) {
			if he, ok := err.(*echo.HTTPError); ok && he.Code == http.StatusNotFound {
				if !strings.HasPrefix(c.Request().URL.Path, "/api") {
					_ = c.File(indexPath)
					return
				}
			}
			e.DefaultHTTPErrorHandler(err, c)
		}
	}

	return e.Start(*addr)
}

// newServer wires the API routes on a fresh Echo instance.
func newServer(dataDir string, cfg aitools.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	h := &handlers{
		dataDir: dataDir,
		session: newSession(aitools.New(aitools.DefaultOptions()), cfg),
	}
	e.POST("/api/ai/survey", h.uploadSurvey)
	e.GET("/api/ai/summary", h.getSummary)
	e.GET("/api/ai/config", h.getConfig)
	e.PUT("/api/ai/config", h.putConfig)

	// Helper to register a GET endpoint serving a specific CSV file
	serveCSV := func(route string, filename string) {
		e.GET(route, func(c echo.Context) error {
			path := filepath.Join(dataDir, filename)
			rows, err := readCSV(path)
			if err != nil {
				if os.IsNotExist(err) {
					return c.JSON(http.StatusNotFound, map[string]any{
						"error":   "file not found",
						"path":    path,
						"message": "CSV file is missing",
					})
				}
				return c.JSON(http.StatusInternalServerError, map[string]any{
					"error":   err.Error(),
					"path":    path,
					"message": "failed to read CSV",
				})
			}
			return c.JSON(http.StatusOK, rows)
		})
	}

	serveCSV("/api/ai/cost_by_tool", ccsv.CostByToolFile)
	serveCSV("/api/ai/value_by_tool", ccsv.ValueByToolFile)
	serveCSV("/api/ai/hours_by_frequency", ccsv.HoursByFrequencyFile)
	serveCSV("/api/ai/top_roi", ccsv.TopROIFile)

	return e
}

// readCSV loads a CSV file and returns a slice of objects keyed by headers.
// Values are kept as strings to avoid lossy or incorrect type coercion.
func readCSV(path string) ([]map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records := ccsv.Parse(string(b))
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	headers := records[0]
	res := make([]map[string]string, 0, len(records)-1)
	for _, row := range records[1:] {
		obj := make(map[string]string, len(headers))
		for j := 0; j < len(headers) && j < len(row); j++ {
			obj[headers[j]] = row[j]
		}
		res = append(res, obj)
	}
	return res, nil
}
