package models

// SalesTrendUnknown is sent for every item until sales trends are computed.
const SalesTrendUnknown = "unknown"

// ForecastItem is one entry of the forecast payload.
type ForecastItem struct {
	Name       string `json:"name" validate:"required"`
	Stock      int    `json:"stock"`
	SalesTrend string `json:"sales_trend"`
}

// ForecastRequest is the body of POST /predict.
type ForecastRequest struct {
	InventoryData []ForecastItem `json:"inventory_data" validate:"dive"`
}

// ForecastResponse carries either a prediction or an error; both may be absent.
type ForecastResponse struct {
	Prediction string `json:"prediction,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewForecastRequest maps an inventory snapshot 1:1, preserving order.
func NewForecastRequest(items []InventoryItem) ForecastRequest {
	req := ForecastRequest{InventoryData: make([]ForecastItem, 0, len(items))}
	for _, item := range items {
		req.InventoryData = append(req.InventoryData, ForecastItem{
			Name:       item.Name,
			Stock:      item.Quantity,
			SalesTrend: SalesTrendUnknown,
		})
	}
	return req
}

// Validate rejects entries without a name.
func (r ForecastRequest) Validate() error {
	return validate.Struct(r)
}
