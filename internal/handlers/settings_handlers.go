package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/stockdash/internal/models"
)

// SetThreshold handles POST /set_threshold.
func (h *Handlers) SetThreshold(c *gin.Context) {
	var input models.ThresholdRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid threshold value"})
		return
	}
	if err := h.Repo.SetThreshold(input.Threshold); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid threshold value"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Threshold set to %d", input.Threshold)})
}
