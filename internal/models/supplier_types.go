package models

// SupplierUpdate is the body of POST /update_supplier/<id>.
// OrderQuantity travels as entered; the server stores it as given.
type SupplierUpdate struct {
	Supplier      string `json:"supplier" validate:"required"`
	OrderQuantity string `json:"order_quantity" validate:"required"`
}

// Validate requires both fields.
func (u SupplierUpdate) Validate() error {
	return validate.Struct(u)
}

// SupplierResponse holds a success text or an error text.
type SupplierResponse struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns whichever message the server set.
func (r SupplierResponse) Text() string {
	if r.Success != "" {
		return r.Success
	}
	return r.Error
}

// SupplierRecommendation is the response of POST /recommend_supplier.
type SupplierRecommendation struct {
	Supplier string `json:"supplier,omitempty"`
	Error    string `json:"error,omitempty"`
}

// RestockOrder is one order placed by POST /auto_restock.
type RestockOrder struct {
	Product       string `json:"product"`
	Supplier      string `json:"supplier"`
	OrderQuantity int    `json:"order_quantity"`
}

// RestockResult is the response of POST /auto_restock.
type RestockResult struct {
	Message string         `json:"message"`
	Orders  []RestockOrder `json:"orders,omitempty"`
}
