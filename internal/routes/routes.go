package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/01moynul/stockdash/internal/handlers"
)

// CORSMiddleware lets the dashboard front end at origin call the API from the browser.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		// Preflight
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// SetupRouter wires every dashboard endpoint. The paths are flat because the
// dashboard front end calls them without a version prefix.
func SetupRouter(h *handlers.Handlers, corsOrigin string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(CORSMiddleware(corsOrigin))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong!"})
	})

	// --- Inventory ---
	router.GET("/dashboard", h.Dashboard)
	router.POST("/add", h.AddItems)
	router.GET("/delete/:id", h.DeleteItem)
	router.GET("/get_items", h.GetItems)
	router.GET("/get_product", h.GetProduct)

	// --- Sales ---
	router.POST("/sale_barcode", h.SaleBarcode)
	router.POST("/sale_name", h.SaleName)

	// --- Stock Warnings ---
	router.POST("/set_threshold", h.SetThreshold)

	// --- Charts ---
	router.GET("/sales_data", h.SalesData)
	router.GET("/get_low_stock", h.GetLowStock)

	// --- AI Forecast ---
	router.POST("/predict", h.Predict)

	// --- Suppliers ---
	router.POST("/update_supplier/:id", h.UpdateSupplier)
	router.POST("/recommend_supplier", h.RecommendSupplier)
	router.POST("/auto_restock", h.AutoRestock)

	return router
}
