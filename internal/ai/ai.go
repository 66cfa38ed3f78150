// Package ai produces demand forecasts for the dev API server.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/01moynul/stockdash/internal/models"
)

// NoPrediction is returned when the model answers without any text.
const NoPrediction = "No prediction available"

// Forecaster turns an inventory snapshot into a free-text demand forecast.
type Forecaster interface {
	Forecast(ctx context.Context, items []models.ForecastItem) (string, error)
}

// GeminiForecaster holds the Gemini client and the model to prompt.
type GeminiForecaster struct {
	Client    *genai.Client
	ModelName string
	logger    *zap.Logger
}

// NewGeminiForecaster initializes the Gemini client.
func NewGeminiForecaster(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*GeminiForecaster, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiForecaster{Client: client, ModelName: modelName, logger: logger}, nil
}

// Close releases the underlying client.
func (f *GeminiForecaster) Close() error {
	return f.Client.Close()
}

func (f *GeminiForecaster) Forecast(ctx context.Context, items []models.ForecastItem) (string, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encode inventory data: %w", err)
	}

	model := f.Client.GenerativeModel(f.ModelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(`
			You are the demand forecasting assistant of a small shop.
			Input: JSON list of {name, stock, sales_trend}.
			Answer with a short restocking forecast per item. Be concise.
		`)},
	}

	res, err := model.GenerateContent(ctx, genai.Text(string(payload)))
	if err != nil {
		return "", fmt.Errorf("error sending prompt: %w", err)
	}
	if res.UsageMetadata != nil {
		f.logger.Debug("forecast generated", zap.Int32("total_tokens", res.UsageMetadata.TotalTokenCount))
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return NoPrediction, nil
	}
	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return NoPrediction, nil
	}
	return sb.String(), nil
}
