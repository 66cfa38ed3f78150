package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/01moynul/stockdash/internal/models"
)

// RuleForecaster is the offline fallback used when no Gemini key is configured.
// Items at or below LowWater are flagged for restock.
type RuleForecaster struct {
	LowWater int
}

func (f RuleForecaster) Forecast(_ context.Context, items []models.ForecastItem) (string, error) {
	var restock, healthy []string
	for _, it := range items {
		if it.Stock <= f.LowWater {
			restock = append(restock, fmt.Sprintf("%s (%d left)", it.Name, it.Stock))
		} else {
			healthy = append(healthy, it.Name)
		}
	}

	var sb strings.Builder
	if len(restock) > 0 {
		sb.WriteString("Restock soon: " + strings.Join(restock, ", ") + ".")
	}
	if len(healthy) > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("Sufficient stock: " + strings.Join(healthy, ", ") + ".")
	}
	if sb.Len() == 0 {
		return NoPrediction, nil
	}
	return sb.String(), nil
}
