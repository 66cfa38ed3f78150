package handlers

import (
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/ai"
	"github.com/01moynul/stockdash/internal/inventory"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Repo       *inventory.Repository
	Forecaster ai.Forecaster
	Logger     *zap.Logger
}
