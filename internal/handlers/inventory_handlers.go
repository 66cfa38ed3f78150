package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

//
// --- Inventory Handlers ---
//

// AddItems handles the multi-row form POST /add.
// Every row is validated before any is stored, so a bad row never leaves the others half-saved.
func (h *Handlers) AddItems(c *gin.Context) {
	names := c.PostFormArray("name[]")
	quantities := c.PostFormArray("quantity[]")
	expiryDates := c.PostFormArray("expiry_date[]")
	barcodes := c.PostFormArray("barcode[]")
	suppliers := c.PostFormArray("supplier[]")
	orderQuantities := c.PostFormArray("order_quantity[]")
	restockThresholds := c.PostFormArray("restock_threshold[]")

	// 1. --- Validate every row ---
	items := make([]models.InventoryItem, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product name is required"})
			return
		}
		qty, err := strconv.Atoi(strings.TrimSpace(at(quantities, i)))
		if err != nil || qty < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a whole number"})
			return
		}

		item := models.InventoryItem{
			Name:       name,
			Quantity:   qty,
			ExpiryDate: optional(at(expiryDates, i)),
			Barcode:    optional(at(barcodes, i)),
			Supplier:   optional(at(suppliers, i)),
		}
		if raw := strings.TrimSpace(at(orderQuantities, i)); raw != "" {
			oq, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Order quantity must be a whole number"})
				return
			}
			item.OrderQuantity = &oq
		}
		if raw := strings.TrimSpace(at(restockThresholds, i)); raw != "" {
			rt, err := strconv.Atoi(raw)
			if err != nil || rt < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Restock threshold must be a whole number"})
				return
			}
			item.RestockThreshold = &rt
		}
		items = append(items, item)
	}

	// 2. --- Store ---
	for _, item := range items {
		stored := h.Repo.Add(item)
		h.Logger.Debug("item stored", zap.Int64("id", stored.ID), zap.String("name", stored.Name), zap.Int("quantity", stored.Quantity))
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// DeleteItem handles GET /delete/:id and sends the browser back to the dashboard.
func (h *Handlers) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}
	h.Repo.Delete(id)
	c.Redirect(http.StatusFound, "/dashboard")
}

// GetItems handles GET /get_items. The id is what the delete and supplier actions address.
func (h *Handlers) GetItems(c *gin.Context) {
	items := h.Repo.List()
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, gin.H{"id": item.ID, "name": item.Name, "quantity": item.Quantity})
	}
	c.JSON(http.StatusOK, out)
}

// GetProduct handles GET /get_product?barcode=.
func (h *Handlers) GetProduct(c *gin.Context) {
	barcode := c.Query("barcode")
	if barcode == "" {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Barcode not provided"})
		return
	}
	item, err := h.Repo.FindByBarcode(barcode)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "name": item.Name})
}

// Dashboard handles GET /dashboard with the full item list and the low-stock names.
func (h *Handlers) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, models.DashboardSnapshot{
		Items:         h.Repo.List(),
		LowStockItems: h.Repo.LowStockNames(),
	})
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
