// Package logging provides slog-based loggers and attribute helpers for
// recording property check runs.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/propq/propq/check"
	"github.com/propq/propq/runid"
)

// PrettyJSONHandler is a custom handler that pretty prints JSON in development
type PrettyJSONHandler struct {
	*slog.JSONHandler
	writer io.Writer
}

func (h *PrettyJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make(map[string]interface{})
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	attrs["time"] = r.Time.Format(time.RFC3339)
	attrs["level"] = r.Level.String()
	attrs["msg"] = r.Message

	prettyJSON, err := json.MarshalIndent(attrs, "", "  ")
	if err != nil {
		return err
	}

	_, err = h.writer.Write(append(prettyJSON, '\n'))
	return err
}

func newPrettyJSONHandler() *PrettyJSONHandler {
	return &PrettyJSONHandler{
		JSONHandler: slog.NewJSONHandler(os.Stdout, nil),
		writer:      os.Stdout,
	}
}

var ProdLogger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

var DevLogger = slog.New(newPrettyJSONHandler())

// NewRunID returns an identifier to correlate all log records of one check run.
func NewRunID() string {
	return runid.New()
}

// ReportAttrs flattens a check report into slog key-value pairs.
func ReportAttrs(name, runID string, rep check.Report) []any {
	attrs := []any{
		"check", name,
		"run_id", runID,
		"passed", rep.Passed,
		"requested_trials", rep.RequestedTrials,
		"completed_trials", rep.CompletedTrials,
		"seed", rep.Seed,
	}
	if !rep.Passed {
		attrs = append(attrs, "failing_args", rep.FailingArgs)
	}
	return attrs
}

// LogReport writes one structured record for a finished check run.
func LogReport(logger *slog.Logger, name, runID string, rep check.Report) {
	if rep.Passed {
		logger.Info("check_passed", ReportAttrs(name, runID, rep)...)
		return
	}
	logger.Warn("check_failed", ReportAttrs(name, runID, rep)...)
}
