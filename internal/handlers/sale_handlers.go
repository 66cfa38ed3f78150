package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/inventory"
)

type SaleBarcodeInput struct {
	Barcode string `json:"barcode" binding:"required"`
	Amount  int    `json:"amount" binding:"required,min=1"`
}

type SaleNameInput struct {
	Name   string `json:"name" binding:"required"`
	Amount int    `json:"amount" binding:"required,min=1"`
}

// SaleBarcode handles POST /sale_barcode.
func (h *Handlers) SaleBarcode(c *gin.Context) {
	var input SaleBarcodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	item, err := h.Repo.SellByBarcode(input.Barcode, input.Amount)
	if err != nil {
		// Unknown barcodes and short stock share one message.
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Insufficient stock"})
		return
	}

	h.Logger.Info("sale recorded", zap.String("barcode", input.Barcode), zap.Int("amount", input.Amount), zap.Int("remaining", item.Quantity))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SaleName handles POST /sale_name.
func (h *Handlers) SaleName(c *gin.Context) {
	var input SaleNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	item, err := h.Repo.SellByName(input.Name, input.Amount)
	if err != nil {
		if !errors.Is(err, inventory.ErrNotFound) && !errors.Is(err, inventory.ErrInsufficientStock) {
			h.Logger.Error("sale failed", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Insufficient stock or product not found"})
		return
	}

	h.Logger.Info("sale recorded", zap.String("name", input.Name), zap.Int("amount", input.Amount), zap.Int("remaining", item.Quantity))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
