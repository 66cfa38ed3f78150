package dashboard

import (
	"context"

	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

// MinLookupLength is the barcode length from which lookups are sent.
const MinLookupLength = 8

// MsgProductNotFound is shown when a barcode resolves to nothing.
const MsgProductNotFound = "Product not found. Please enter manually."

// LookupProduct resolves barcode to a product name.
func (d *Dashboard) LookupProduct(ctx context.Context, barcode string) (models.LookupResult, error) {
	res, err := d.backend.GetProduct(ctx, barcode)
	if err != nil {
		d.logger.Error("error fetching product details", zap.String("barcode", barcode), zap.Error(err))
		return models.LookupResult{}, err
	}
	return res, nil
}
