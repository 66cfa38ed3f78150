package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/01moynul/stockdash/internal/models"
)

// GetProduct resolves a barcode to a product name.
func (c *Client) GetProduct(ctx context.Context, barcode string) (models.LookupResult, error) {
	var out models.LookupResult
	_, err := c.do(ctx, http.MethodGet, "get_product?barcode="+url.QueryEscape(barcode), nil, &out)
	return out, err
}

// GetItems fetches the current inventory snapshot. A timestamp query parameter
// keeps intermediaries from serving a cached list.
func (c *Client) GetItems(ctx context.Context) ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	path := "get_items?_=" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	if _, err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Predict submits a forecast request.
func (c *Client) Predict(ctx context.Context, req models.ForecastRequest) (models.ForecastResponse, error) {
	var out models.ForecastResponse
	_, err := c.do(ctx, http.MethodPost, "predict", req, &out)
	return out, err
}

// RecordSale posts to /sale_barcode or /sale_name depending on which identifier is set.
func (c *Client) RecordSale(ctx context.Context, req models.SaleRequest) (models.ActionResponse, error) {
	var out models.ActionResponse
	if req.ByBarcode() {
		body := struct {
			Barcode string `json:"barcode"`
			Amount  int    `json:"amount"`
		}{req.Barcode, req.Amount}
		_, err := c.do(ctx, http.MethodPost, "sale_barcode", body, &out)
		return out, err
	}
	body := struct {
		Name   string `json:"name"`
		Amount int    `json:"amount"`
	}{req.Name, req.Amount}
	_, err := c.do(ctx, http.MethodPost, "sale_name", body, &out)
	return out, err
}

// SetThreshold mirrors the stock warning threshold to the server.
func (c *Client) SetThreshold(ctx context.Context, threshold int) (models.ActionResponse, error) {
	var out models.ActionResponse
	_, err := c.do(ctx, http.MethodPost, "set_threshold", models.ThresholdRequest{Threshold: threshold}, &out)
	return out, err
}

// SalesData fetches the sales and inventory aggregates.
func (c *Client) SalesData(ctx context.Context) (models.SalesDataResponse, error) {
	var out models.SalesDataResponse
	_, err := c.do(ctx, http.MethodGet, "sales_data", nil, &out)
	return out, err
}

// LowStock fetches the low-stock aggregate.
func (c *Client) LowStock(ctx context.Context) (models.LowStockResponse, error) {
	var out models.LowStockResponse
	_, err := c.do(ctx, http.MethodGet, "get_low_stock", nil, &out)
	return out, err
}

// UpdateSupplier sets the supplier and reorder quantity of one item.
func (c *Client) UpdateSupplier(ctx context.Context, itemID string, update models.SupplierUpdate) (models.SupplierResponse, error) {
	var out models.SupplierResponse
	_, err := c.do(ctx, http.MethodPost, "update_supplier/"+url.PathEscape(itemID), update, &out)
	return out, err
}

// RecommendSupplier asks the server for a supplier suggestion.
func (c *Client) RecommendSupplier(ctx context.Context, productName string) (models.SupplierRecommendation, error) {
	var out models.SupplierRecommendation
	body := struct {
		ProductName string `json:"product_name"`
	}{productName}
	_, err := c.do(ctx, http.MethodPost, "recommend_supplier", body, &out)
	return out, err
}

// AutoRestock triggers reordering of every item under its restock level.
func (c *Client) AutoRestock(ctx context.Context) (models.RestockResult, error) {
	var out models.RestockResult
	_, err := c.do(ctx, http.MethodPost, "auto_restock", nil, &out)
	return out, err
}

// Delete navigates to the delete action of an item. The server answers with a
// redirect to the dashboard, which the client follows like a page transition.
func (c *Client) Delete(ctx context.Context, itemID int64) error {
	path := "delete/" + strconv.FormatInt(itemID, 10)
	status, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("apiclient: GET /%s: status %d", path, status)
	}
	return nil
}

// AddItems submits the multi-item form. A 2xx (after redirects) is success; an
// error response carries {"error": "..."}.
func (c *Client) AddItems(ctx context.Context, rows []models.NewItemRow) (models.ActionResponse, error) {
	form := url.Values{}
	for _, row := range rows {
		form.Add("barcode[]", row.Barcode)
		form.Add("name[]", row.Name)
		form.Add("quantity[]", row.Quantity)
		form.Add("expiry_date[]", row.ExpiryDate)
		form.Add("supplier[]", row.Supplier)
		form.Add("order_quantity[]", row.OrderQuantity)
		form.Add("restock_threshold[]", row.RestockThreshold)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL("add"), strings.NewReader(form.Encode()))
	if err != nil {
		return models.ActionResponse{}, fmt.Errorf("apiclient: build POST /add: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	var body struct {
		Error string `json:"error"`
	}
	status, err := c.send(req, &body)
	if err != nil {
		return models.ActionResponse{}, err
	}
	if status >= http.StatusBadRequest {
		return models.ActionResponse{Success: false, Message: body.Error}, nil
	}
	return models.ActionResponse{Success: true}, nil
}

// Ping checks that the API is reachable.
func (c *Client) Ping(ctx context.Context) error {
	var out struct {
		Message string `json:"message"`
	}
	_, err := c.do(ctx, http.MethodGet, "ping", nil, &out)
	return err
}
