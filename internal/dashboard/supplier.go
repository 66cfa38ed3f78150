package dashboard

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

const (
	MsgSupplierFieldsRequired = "Please enter both supplier and order quantity!"
	MsgProductNameRequired    = "Please enter a product name."
	MsgRecommendedPrefix      = "Recommended supplier: "
)

// UpdateSupplier sends the supplier and reorder quantity of one item and shows
// the server's reply as is. Nothing is kept locally.
func (d *Dashboard) UpdateSupplier(ctx context.Context, itemID, supplier, orderQuantity string) error {
	update := models.SupplierUpdate{
		Supplier:      strings.TrimSpace(supplier),
		OrderQuantity: strings.TrimSpace(orderQuantity),
	}
	if err := update.Validate(); err != nil {
		return d.reject(MsgSupplierFieldsRequired)
	}

	resp, err := d.backend.UpdateSupplier(ctx, itemID, update)
	if err != nil {
		d.logger.Error("error updating supplier details", zap.String("item_id", itemID), zap.Error(err))
		return err
	}

	d.ui.Alert(resp.Text())
	if resp.Error != "" {
		return &ServerError{Message: resp.Error}
	}
	return nil
}

// RecommendSupplier asks the server which supplier to order productName from.
func (d *Dashboard) RecommendSupplier(ctx context.Context, productName string) (string, error) {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return "", d.reject(MsgProductNameRequired)
	}

	resp, err := d.backend.RecommendSupplier(ctx, productName)
	if err != nil {
		d.logger.Error("supplier recommendation failed", zap.String("product", productName), zap.Error(err))
		return "", err
	}
	if resp.Error != "" {
		d.ui.Alert(MsgErrorPrefix + resp.Error)
		return "", &ServerError{Message: resp.Error}
	}

	d.ui.Alert(MsgRecommendedPrefix + resp.Supplier)
	return resp.Supplier, nil
}

// AutoRestock asks the server to reorder everything under its restock level.
func (d *Dashboard) AutoRestock(ctx context.Context) (models.RestockResult, error) {
	res, err := d.backend.AutoRestock(ctx)
	if err != nil {
		d.logger.Error("auto restock failed", zap.Error(err))
		return models.RestockResult{}, err
	}
	d.ui.Alert(res.Message)
	return res, nil
}
