package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

const (
	MsgForecastLoading    = "Loading..."
	MsgNoItems            = "No items in inventory."
	MsgForecastFetchError = "Error fetching prediction."
	MsgUnexpectedError    = "An unexpected error occurred."
)

// GetPrediction shows a loading text, builds a forecast request from the
// current items and shows whatever comes back. Unlike the other operations it
// tells the user about network failures.
func (d *Dashboard) GetPrediction(ctx context.Context) error {
	d.ui.ShowPrediction(MsgForecastLoading)

	items, err := d.backend.GetItems(ctx)
	if err != nil {
		d.logger.Error("forecast: failed to fetch items", zap.Error(err))
		d.ui.ShowPrediction(MsgUnexpectedError)
		return err
	}
	if len(items) == 0 {
		d.ui.ShowPrediction(MsgNoItems)
		return nil
	}

	req := models.NewForecastRequest(items)
	if err := req.Validate(); err != nil {
		d.logger.Warn("forecast request has unnamed items", zap.Error(err))
	}

	resp, err := d.backend.Predict(ctx, req)
	if err != nil {
		d.logger.Error("forecast request failed", zap.Int("items", len(items)), zap.Error(err))
		d.ui.ShowPrediction(MsgUnexpectedError)
		return err
	}

	switch {
	case resp.Prediction != "":
		d.ui.ShowPrediction(resp.Prediction)
	case resp.Error != "":
		d.ui.ShowPrediction(MsgErrorPrefix + resp.Error)
		return &ServerError{Message: resp.Error}
	default:
		d.ui.ShowPrediction(MsgForecastFetchError)
	}
	return nil
}
