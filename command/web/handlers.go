package web

import (
	"ai-roi/command/calculate"
	"ai-roi/connectors/survey"
	"ai-roi/domain/aitools"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// maxUploadBytes bounds a single survey upload.
const maxUploadBytes = 32 << 20

type handlers struct {
	dataDir string
	session *session
}

func (h *handlers) uploadSurvey(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apiError(c, http.StatusBadRequest, err, "multipart field \"file\" is required")
	}
	f, err := fh.Open()
	if err != nil {
		return apiError(c, http.StatusBadRequest, err, "could not open the uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return apiError(c, http.StatusBadRequest, err, "could not read the uploaded file")
	}
	if len(data) > maxUploadBytes {
		return apiError(c, http.StatusRequestEntityTooLarge, fmt.Errorf("upload exceeds %d bytes", maxUploadBytes), "file is too large")
	}

	rows, err := survey.Decode(fh.Filename, data)
	if err != nil {
		slog.Warn("survey.decode.error", "filename", fh.Filename, "error", err)
		return apiError(c, http.StatusBadRequest, err, "could not parse the uploaded file")
	}

	snap, err := h.session.load(fh.Filename, rows)
	if err != nil {
		slog.Warn("web.survey.rejected", "filename", fh.Filename, "rows", len(rows), "error", err)
		return summarizeError(c, err)
	}
	slog.Info("web.survey.loaded", "dataset_id", snap.DatasetID, "filename", fh.Filename, "respondents", snap.Meta.Respondents)
	return c.JSON(http.StatusOK, snap)
}

func (h *handlers) getSummary(c echo.Context) error {
	if snap, ok := h.session.current(); ok {
		return c.JSON(http.StatusOK, snap)
	}

	// Fall back to the last export written by the calculate command.
	path := filepath.Join(h.dataDir, calculate.SummaryFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON(http.StatusNotFound, map[string]any{
				"error":   "no summary",
				"message": "upload a survey or run calculate first",
			})
		}
		return apiError(c, http.StatusInternalServerError, err, "failed to read summary")
	}
	var sum aitools.Summary
	if err := json.Unmarshal(b, &sum); err != nil {
		return apiError(c, http.StatusInternalServerError, err, "failed to decode summary")
	}
	return c.JSON(http.StatusOK, snapshot{
		Filename: path,
		Summary:  &sum.Report,
		Meta:     &sum.Meta,
	})
}

func (h *handlers) getConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, h.session.config())
}

func (h *handlers) putConfig(c echo.Context) error {
	var cfg aitools.Config
	if err := c.Bind(&cfg); err != nil {
		return apiError(c, http.StatusBadRequest, err, "invalid configuration payload")
	}
	snap, recomputed, err := h.session.updateConfig(cfg)
	if err != nil {
		if errors.Is(err, aitools.ErrInvalidConfig) {
			return apiError(c, http.StatusBadRequest, err, "invalid configuration")
		}
		return summarizeError(c, err)
	}
	slog.Info("web.config.updated", "tools", len(cfg.ToolCosts), "buckets", len(cfg.TimeSavedMap), "recomputed", recomputed)

	resp := map[string]any{"config": h.session.config()}
	if recomputed {
		resp["dataset_id"] = snap.DatasetID
		resp["filename"] = snap.Filename
		resp["summary"] = snap.Summary
		resp["meta"] = snap.Meta
	}
	return c.JSON(http.StatusOK, resp)
}

// summarizeError maps engine failures to HTTP statuses.
func summarizeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, aitools.ErrMissingColumns):
		return apiError(c, http.StatusUnprocessableEntity, err, err.Error())
	case errors.Is(err, aitools.ErrEmptyInput):
		return apiError(c, http.StatusBadRequest, err, err.Error())
	case errors.Is(err, aitools.ErrInvalidConfig):
		return apiError(c, http.StatusBadRequest, err, "invalid configuration")
	default:
		return apiError(c, http.StatusInternalServerError, err, "failed to summarize survey")
	}
}

func apiError(c echo.Context, status int, err error, message string) error {
	return c.JSON(status, map[string]any{
		"error":   err.Error(),
		"message": message,
	})
}
