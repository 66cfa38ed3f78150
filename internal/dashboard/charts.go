package dashboard

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/01moynul/stockdash/internal/models"
)

// SalesChart projects units sold per item onto a bar chart.
func SalesChart(s models.Series) models.Chart {
	return models.Chart{
		ID:              "salesChart",
		Title:           "Sales",
		Kind:            models.ChartBar,
		Label:           "Units Sold",
		Labels:          s.Labels(),
		Values:          s.Values(),
		BackgroundColor: "rgba(54, 162, 235, 0.6)",
		BorderColor:     "rgba(54, 162, 235, 1)",
	}
}

// InventoryChart projects stock levels per item onto a line chart.
func InventoryChart(s models.Series) models.Chart {
	return models.Chart{
		ID:              "inventoryChart",
		Title:           "Inventory Levels",
		Kind:            models.ChartLine,
		Label:           "Stock Levels",
		Labels:          s.Labels(),
		Values:          s.Values(),
		BackgroundColor: "rgba(255, 99, 132, 0.6)",
		BorderColor:     "rgba(255, 99, 132, 1)",
	}
}

// RestockChart projects the low-stock items onto a bar chart.
func RestockChart(s models.Series) models.Chart {
	return models.Chart{
		ID:              "predictionChart",
		Title:           "Restock Needs",
		Kind:            models.ChartBar,
		Label:           "Stock Left",
		Labels:          s.Labels(),
		Values:          s.Values(),
		BackgroundColor: "rgba(255, 206, 86, 0.6)",
		BorderColor:     "rgba(255, 206, 86, 1)",
	}
}

// LoadCharts fetches both aggregate endpoints in parallel and renders the
// charts whose data arrived, in a fixed order. One failed fetch does not hide
// the other's charts.
func (d *Dashboard) LoadCharts(ctx context.Context) error {
	var (
		g        errgroup.Group
		sales    models.SalesDataResponse
		lowStock models.LowStockResponse
		salesErr error
		lowErr   error
	)

	// Each fetch keeps its own error. A plain Group never cancels the sibling,
	// so Wait only joins the goroutines.
	g.Go(func() error {
		sales, salesErr = d.backend.SalesData(ctx)
		return nil
	})
	g.Go(func() error {
		lowStock, lowErr = d.backend.LowStock(ctx)
		return nil
	})
	_ = g.Wait()

	if salesErr != nil {
		d.logger.Error("error fetching sales data", zap.Error(salesErr))
	} else {
		d.ui.RenderChart(SalesChart(sales.SalesData))
		d.ui.RenderChart(InventoryChart(sales.InventoryData))
	}

	if lowErr != nil {
		d.logger.Error("error fetching restock data", zap.Error(lowErr))
	} else {
		d.ui.RenderChart(RestockChart(lowStock.LowStock))
	}

	return errors.Join(salesErr, lowErr)
}
