package dashboard

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/models"
)

const (
	MsgNoRows          = "Please add at least one item."
	MsgNameRequired    = "Product name is required"
	MsgInvalidQuantity = "Please enter a valid quantity."
)

// RowListEditor holds the pending "add item" rows. Rows are never persisted
// until Submit sends all of them at once.
type RowListEditor struct {
	d *Dashboard

	mu   sync.Mutex
	rows []*models.NewItemRow
}

// AddRow appends an empty row and returns a copy of it.
func (e *RowListEditor) AddRow() models.NewItemRow {
	e.mu.Lock()
	defer e.mu.Unlock()
	row := &models.NewItemRow{ID: uuid.NewString()}
	e.rows = append(e.rows, row)
	return *row
}

// RemoveRow deletes the row with id. It reports whether the row existed.
func (e *RowListEditor) RemoveRow(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, row := range e.rows {
		if row.ID == id {
			e.rows = append(e.rows[:i], e.rows[i+1:]...)
			return true
		}
	}
	return false
}

// Rows returns copies of the rows in display order.
func (e *RowListEditor) Rows() []models.NewItemRow {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.NewItemRow, len(e.rows))
	for i, row := range e.rows {
		out[i] = *row
	}
	return out
}

// Row returns a copy of one row.
func (e *RowListEditor) Row(id string) (models.NewItemRow, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if row := e.find(id); row != nil {
		return *row, true
	}
	return models.NewItemRow{}, false
}

func (e *RowListEditor) SetName(id, value string) bool {
	return e.edit(id, func(r *models.NewItemRow) { r.Name = value })
}

func (e *RowListEditor) SetQuantity(id, value string) bool {
	return e.edit(id, func(r *models.NewItemRow) { r.Quantity = value })
}

func (e *RowListEditor) SetExpiry(id, value string) bool {
	return e.edit(id, func(r *models.NewItemRow) { r.ExpiryDate = value })
}

// SetRestock sets the optional reorder details used by auto-restock.
func (e *RowListEditor) SetRestock(id, supplier, orderQuantity, restockThreshold string) bool {
	return e.edit(id, func(r *models.NewItemRow) {
		r.Supplier = strings.TrimSpace(supplier)
		r.OrderQuantity = strings.TrimSpace(orderQuantity)
		r.RestockThreshold = strings.TrimSpace(restockThreshold)
	})
}

// SetBarcode stores the barcode and, once it has MinLookupLength characters,
// looks the product up and fills in the row's name. A miss clears the name and
// alerts; a transport failure is logged and leaves the name alone.
func (e *RowListEditor) SetBarcode(ctx context.Context, id, value string) error {
	if !e.edit(id, func(r *models.NewItemRow) { r.Barcode = value }) {
		return nil
	}

	barcode := strings.TrimSpace(value)
	if utf8.RuneCountInString(barcode) < MinLookupLength {
		return nil
	}

	res, err := e.d.LookupProduct(ctx, barcode)
	if err != nil {
		return err
	}

	if res.Success {
		e.SetName(id, res.Name)
		return nil
	}
	e.d.ui.Alert(MsgProductNotFound)
	e.SetName(id, "")
	return nil
}

// Submit sends every row in one request. Rows are checked first; on success
// the list is emptied and the dashboard resynced.
func (e *RowListEditor) Submit(ctx context.Context) error {
	rows := e.Rows()
	if len(rows) == 0 {
		return e.d.reject(MsgNoRows)
	}
	for i := range rows {
		rows[i].Name = strings.TrimSpace(rows[i].Name)
		rows[i].Quantity = strings.TrimSpace(rows[i].Quantity)
		rows[i].Barcode = strings.TrimSpace(rows[i].Barcode)
		if rows[i].Name == "" {
			return e.d.reject(MsgNameRequired)
		}
		if q, err := strconv.Atoi(rows[i].Quantity); err != nil || q < 0 {
			return e.d.reject(MsgInvalidQuantity)
		}
	}

	resp, err := e.d.backend.AddItems(ctx, rows)
	if err != nil {
		e.d.logger.Error("error adding items", zap.Int("rows", len(rows)), zap.Error(err))
		return err
	}
	if !resp.Success {
		e.d.ui.Alert(resp.Message)
		return &ServerError{Message: resp.Message}
	}

	e.mu.Lock()
	e.rows = nil
	e.mu.Unlock()
	return e.d.Resync(ctx)
}

func (e *RowListEditor) edit(id string, fn func(*models.NewItemRow)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	row := e.find(id)
	if row == nil {
		return false
	}
	fn(row)
	return true
}

func (e *RowListEditor) find(id string) *models.NewItemRow {
	for _, row := range e.rows {
		if row.ID == id {
			return row
		}
	}
	return nil
}
