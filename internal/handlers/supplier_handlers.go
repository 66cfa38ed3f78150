package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/inventory"
	"github.com/01moynul/stockdash/internal/models"
)

// UpdateSupplierInput accepts order_quantity as a JSON number or a numeric string.
type UpdateSupplierInput struct {
	Supplier      string `json:"supplier"`
	OrderQuantity any    `json:"order_quantity"`
}

// UpdateSupplier handles POST /update_supplier/:id.
func (h *Handlers) UpdateSupplier(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var input UpdateSupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Repo.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	supplier := strings.TrimSpace(input.Supplier)
	qty, ok := orderQuantity(input.OrderQuantity)
	if supplier == "" || !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier and order quantity are required"})
		return
	}

	if _, err := h.Repo.UpdateSupplier(id, supplier, qty); err != nil {
		if errors.Is(err, inventory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": fmt.Sprintf("Supplier and order quantity updated for %s!", item.Name)})
}

func orderQuantity(v any) (int, bool) {
	switch q := v.(type) {
	case float64:
		if q <= 0 || q != float64(int(q)) {
			return 0, false
		}
		return int(q), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil || n <= 0 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// knownSuppliers is a stand-in catalogue until a supplier directory exists.
var knownSuppliers = map[string][]string{
	"Laptop":     {"TechWorld", "GadgetPro"},
	"Milk":       {"DairyBest", "FreshFarms"},
	"Headphones": {"AudioTech", "SoundWave"},
}

// RecommendSupplier handles POST /recommend_supplier.
func (h *Handlers) RecommendSupplier(c *gin.Context) {
	var input struct {
		ProductName string `json:"product_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No product name provided"})
		return
	}

	supplier := "GenericSupplier"
	if list, ok := knownSuppliers[input.ProductName]; ok {
		supplier = list[0]
	}
	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// AutoRestock handles POST /auto_restock. Items without a supplier or order size are skipped.
func (h *Handlers) AutoRestock(c *gin.Context) {
	low := h.Repo.BelowRestockLevel()
	if len(low) == 0 {
		c.JSON(http.StatusOK, models.RestockResult{Message: "No items need restocking."})
		return
	}

	orders := []models.RestockOrder{}
	for _, item := range low {
		if item.Supplier == nil || item.OrderQuantity == nil {
			continue
		}
		orders = append(orders, models.RestockOrder{
			Product:       item.Name,
			Supplier:      *item.Supplier,
			OrderQuantity: *item.OrderQuantity,
		})
		h.Logger.Info("placing restock order", zap.String("product", item.Name), zap.Int("quantity", *item.OrderQuantity), zap.String("supplier", *item.Supplier))
	}

	c.JSON(http.StatusOK, models.RestockResult{Message: "Orders placed", Orders: orders})
}
