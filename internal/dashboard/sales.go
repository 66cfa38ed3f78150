package dashboard

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

const (
	MsgInvalidAmount       = "Please enter a valid amount."
	MsgMissingIdentifier   = "Please enter a barcode or product name."
	MsgAmbiguousIdentifier = "Please enter either a barcode or a product name, not both."
	MsgSaleRecorded        = "Sale recorded successfully!"
	MsgSaleFailedPrefix    = "Error recording sale: "
)

// RecordSale validates and submits a sale, identified by barcode or by name.
// On success the dashboard resyncs. A transport failure is logged and returned
// but not shown to the user.
func (d *Dashboard) RecordSale(ctx context.Context, barcode, name, amount string) error {
	n, err := strconv.Atoi(strings.TrimSpace(amount))
	if err != nil || n < 1 {
		return d.reject(MsgInvalidAmount)
	}

	req := models.SaleRequest{
		Barcode: strings.TrimSpace(barcode),
		Name:    strings.TrimSpace(name),
		Amount:  n,
	}
	if err := req.Validate(); err != nil {
		switch {
		case errors.Is(err, models.ErrAmbiguousIdentifier):
			return d.reject(MsgAmbiguousIdentifier)
		case errors.Is(err, models.ErrInvalidAmount):
			return d.reject(MsgInvalidAmount)
		default:
			return d.reject(MsgMissingIdentifier)
		}
	}

	resp, err := d.backend.RecordSale(ctx, req)
	if err != nil {
		// Not shown to the user; only the forecast reports network failures.
		d.logger.Error("sale request failed", zap.Bool("by_barcode", req.ByBarcode()), zap.Error(err))
		return err
	}
	if !resp.Success {
		d.ui.Alert(MsgSaleFailedPrefix + resp.Message)
		return &ServerError{Message: resp.Message}
	}

	d.ui.Alert(MsgSaleRecorded)
	return d.Resync(ctx)
}
