package models

// NewItemRow is one pending "add item" entry. It only lives on the client.
type NewItemRow struct {
	ID         string `json:"id"`
	Barcode    string `json:"barcode"`
	Name       string `json:"name"`
	Quantity   string `json:"quantity"`
	ExpiryDate string `json:"expiry_date"`

	// Optional reorder details; empty means unset.
	Supplier         string `json:"supplier"`
	OrderQuantity    string `json:"order_quantity"`
	RestockThreshold string `json:"restock_threshold"`
}
