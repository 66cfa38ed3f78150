package models

// InventoryItem is the model for a row of the shop inventory.
// The server owns it; the dashboard only holds the rendered snapshot.
type InventoryItem struct {
	ID               int64   `json:"id,omitempty"`
	Name             string  `json:"name"`
	Quantity         int     `json:"quantity"`
	ExpiryDate       *string `json:"expiry_date,omitempty"`
	Barcode          *string `json:"barcode,omitempty"`
	Supplier         *string `json:"supplier,omitempty"`
	OrderQuantity    *int    `json:"order_quantity,omitempty"`
	RestockThreshold *int    `json:"restock_threshold,omitempty"`
}

// LookupResult is the response of GET /get_product.
type LookupResult struct {
	Success bool   `json:"success"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
}

// DashboardSnapshot is the JSON form of GET /dashboard.
type DashboardSnapshot struct {
	Items         []InventoryItem `json:"items"`
	LowStockItems []string        `json:"low_stock_items"`
}
