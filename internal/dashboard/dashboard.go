// Package dashboard coordinates the inventory dashboard: it validates user input,
// sends it to the API, and keeps the rendered read models (items, warning
// indicators, charts, forecast text) consistent with the server.
//
// Operations block at the HTTP boundary only. Independent operations may run
// concurrently; their results land in arrival order and nothing orders them
// against each other.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
	"github.com/01moynul/stockdash/internal/threshold"
)

// UI is the surface the dashboard draws on. Alert is the only channel for
// user-facing messages.
type UI interface {
	Alert(message string)
	ShowPrediction(text string)
	ShowDeleteConfirmation(itemID int64, open bool)
	RenderChart(chart models.Chart)
}

// Backend is the part of the API the dashboard talks to. *apiclient.Client implements it.
type Backend interface {
	GetProduct(ctx context.Context, barcode string) (models.LookupResult, error)
	GetItems(ctx context.Context) ([]models.InventoryItem, error)
	Predict(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error)
	RecordSale(ctx context.Context, req models.SaleRequest) (models.ActionResponse, error)
	SetThreshold(ctx context.Context, threshold int) (models.ActionResponse, error)
	SalesData(ctx context.Context) (models.SalesDataResponse, error)
	LowStock(ctx context.Context) (models.LowStockResponse, error)
	UpdateSupplier(ctx context.Context, itemID string, update models.SupplierUpdate) (models.SupplierResponse, error)
	RecommendSupplier(ctx context.Context, productName string) (models.SupplierRecommendation, error)
	AutoRestock(ctx context.Context) (models.RestockResult, error)
	Delete(ctx context.Context, itemID int64) error
	AddItems(ctx context.Context, rows []models.NewItemRow) (models.ActionResponse, error)
}

type Options struct {
	Backend Backend
	Store   threshold.Store
	UI      UI
	Logger  *zap.Logger
}

type Dashboard struct {
	backend Backend
	store   threshold.Store
	ui      UI
	logger  *zap.Logger

	mu       sync.Mutex
	items    []models.InventoryItem
	warnings []WarningIndicator

	Rows *RowListEditor
	Gate *DeletionGate
}

// New wires a dashboard. Store defaults to an in-memory store and Logger to a no-op.
func New(opts Options) (*Dashboard, error) {
	if opts.Backend == nil {
		return nil, errors.New("dashboard: backend is required")
	}
	if opts.UI == nil {
		return nil, errors.New("dashboard: ui is required")
	}
	if opts.Store == nil {
		opts.Store = threshold.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	d := &Dashboard{
		backend: opts.Backend,
		store:   opts.Store,
		ui:      opts.UI,
		logger:  opts.Logger,
	}
	d.Rows = &RowListEditor{d: d}
	d.Gate = &DeletionGate{d: d}
	return d, nil
}

// Load is the page-load step: stored warnings first, then the item snapshot,
// then the charts. A failing step is logged and does not stop the others.
func (d *Dashboard) Load(ctx context.Context) error {
	warnErr := d.ApplyWarnings(ctx)

	items, itemsErr := d.backend.GetItems(ctx)
	if itemsErr != nil {
		d.logger.Error("failed to fetch items", zap.Error(itemsErr))
	} else {
		d.render(items)
		warnErr = d.ApplyWarnings(ctx)
	}

	chartsErr := d.LoadCharts(ctx)
	return errors.Join(warnErr, itemsErr, chartsErr)
}

// Resync refreshes every read model after a mutation, standing in for a full page reload.
func (d *Dashboard) Resync(ctx context.Context) error {
	d.logger.Debug("resyncing dashboard")
	return d.Load(ctx)
}

// Items returns the rendered snapshot.
func (d *Dashboard) Items() []models.InventoryItem {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.InventoryItem, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Dashboard) render(items []models.InventoryItem) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items = items
	d.warnings = make([]WarningIndicator, len(items))
	for i, item := range items {
		d.warnings[i] = WarningIndicator{ItemName: item.Name, Quantity: item.Quantity}
	}
}

// reject reports a local validation failure. Nothing has been sent at this point.
func (d *Dashboard) reject(message string) error {
	d.ui.Alert(message)
	return &ValidationError{Message: message}
}
