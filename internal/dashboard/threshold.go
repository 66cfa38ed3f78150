package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/threshold"
)

const (
	MsgInvalidThreshold = "Please enter a valid stock warning level."
	MsgThresholdSaved   = "Stock warning level saved!"
	MsgErrorPrefix      = "Error: "
)

// WarningIndicator is the low-stock marker next to one rendered item.
type WarningIndicator struct {
	ItemName string
	Quantity int
	Visible  bool
}

// WarningVisible is the only rule for showing a low-stock marker.
func WarningVisible(quantity, threshold int) bool {
	return quantity <= threshold
}

// SetThreshold validates raw, mirrors it to the server and, once the server
// accepts it, writes the local cache and recomputes every indicator. A server
// rejection leaves the cache and the indicators as they were.
func (d *Dashboard) SetThreshold(ctx context.Context, raw string) error {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return d.reject(MsgInvalidThreshold)
	}

	resp, err := d.backend.SetThreshold(ctx, value)
	if err != nil {
		d.logger.Error("set threshold request failed", zap.Int("threshold", value), zap.Error(err))
		return err
	}
	if !resp.Success {
		d.ui.Alert(MsgErrorPrefix + resp.Message)
		return &ServerError{Message: resp.Message}
	}

	if err := d.store.Set(ctx, value); err != nil {
		d.logger.Error("failed to cache threshold", zap.Int("threshold", value), zap.Error(err))
		return fmt.Errorf("dashboard: cache threshold: %w", err)
	}

	d.ui.Alert(MsgThresholdSaved)
	return d.ApplyWarnings(ctx)
}

// ApplyWarnings recomputes indicator visibility from the cached threshold
// (DefaultValue when nothing is cached). An unreadable cache falls back to the
// default and the read error is returned.
func (d *Dashboard) ApplyWarnings(ctx context.Context) error {
	t, err := threshold.Resolve(ctx, d.store)
	if err != nil {
		d.logger.Warn("threshold cache unreadable, using default", zap.Int("default", t), zap.Error(err))
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.warnings {
		d.warnings[i].Visible = WarningVisible(d.warnings[i].Quantity, t)
	}
	return err
}

// Warnings returns a snapshot of the rendered indicators.
func (d *Dashboard) Warnings() []WarningIndicator {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]WarningIndicator, len(d.warnings))
	copy(out, d.warnings)
	return out
}
