package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/stockdash/internal/models"
)

//
// --- Chart Aggregates ---
//

// SalesData handles GET /sales_data: units sold and stock level per item name.
func (h *Handlers) SalesData(c *gin.Context) {
	c.JSON(http.StatusOK, models.SalesDataResponse{
		SalesData:     h.Repo.SalesByItem(),
		InventoryData: h.Repo.InventoryLevels(),
	})
}

// GetLowStock handles GET /get_low_stock: items under the server threshold.
func (h *Handlers) GetLowStock(c *gin.Context) {
	c.JSON(http.StatusOK, models.LowStockResponse{LowStock: h.Repo.LowStock()})
}
