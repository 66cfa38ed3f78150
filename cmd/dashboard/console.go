package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

// consoleUI prints alerts and forecasts to out. Charts are written as
// chart-library config files into chartDir, one per chart, when it is set.
type consoleUI struct {
	out      io.Writer
	chartDir string
	logger   *zap.Logger

	mu      sync.Mutex
	written []string
}

func newConsoleUI(out io.Writer, chartDir string, logger *zap.Logger) *consoleUI {
	return &consoleUI{out: out, chartDir: chartDir, logger: logger}
}

func (u *consoleUI) Alert(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintln(u.out, message)
}

func (u *consoleUI) ShowPrediction(text string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintf(u.out, "Forecast: %s\n", text)
}

func (u *consoleUI) ShowDeleteConfirmation(itemID int64, open bool) {
	if !open {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	fmt.Fprintf(u.out, "Delete item %d? [y/N] ", itemID)
}

func (u *consoleUI) RenderChart(chart models.Chart) {
	if u.chartDir == "" {
		return
	}
	path, err := writeChart(u.chartDir, chart)
	if err != nil {
		u.logger.Error("failed to write chart", zap.String("chart", chart.ID), zap.Error(err))
		return
	}
	u.mu.Lock()
	u.written = append(u.written, path)
	u.mu.Unlock()
}

// Written returns the chart files produced so far.
func (u *consoleUI) Written() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.written...)
}

// writeChart stores chart's config as <dir>/<slug of title>.json.
func writeChart(dir string, chart models.Chart) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}
	data, err := json.MarshalIndent(chart.Config(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode chart %s: %w", chart.ID, err)
	}
	path := filepath.Join(dir, slug.Make(chart.Title)+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write chart %s: %w", chart.ID, err)
	}
	return path, nil
}
