package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

// Predict handles POST /predict.
// Forecast failures are reported in the body with a 200, like any other logical failure.
func (h *Handlers) Predict(c *gin.Context) {
	// 1. Parse Input
	var input models.ForecastRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid forecast request: " + err.Error()})
			return
		}
	}
	if len(input.InventoryData) == 0 {
		input = models.NewForecastRequest(h.Repo.List())
	}

	// 2. Ask the forecaster
	prediction, err := h.Forecaster.Forecast(c.Request.Context(), input.InventoryData)
	if err != nil {
		h.Logger.Warn("forecast failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"error": "Failed to get prediction: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prediction": prediction})
}
