// Package inventory keeps the dev server's items, sales and warning threshold in memory.
package inventory

import (
	"sync"
	"time"

	"github.com/01moynul/stockdash/internal/models"
)

// DefaultThreshold is the server-side warning level before anyone sets one.
const DefaultThreshold = 5

// Sale records units sold of one item.
type Sale struct {
	ID           int64
	ItemID       int64
	SaleDate     time.Time
	QuantitySold int
}

// Repository is safe for concurrent use. Items keep insertion order, which is
// the order every aggregate is reported in.
type Repository struct {
	mu        sync.RWMutex
	items     []models.InventoryItem
	sales     []Sale
	nextItem  int64
	nextSale  int64
	threshold int
	now       func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		nextItem:  1,
		nextSale:  1,
		threshold: DefaultThreshold,
		now:       time.Now,
	}
}

// List returns a copy of every item.
func (r *Repository) List() []models.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.InventoryItem, len(r.items))
	copy(out, r.items)
	return out
}

// Get returns the item with id.
func (r *Repository) Get(id int64) (models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexByID(id)
	if idx < 0 {
		return models.InventoryItem{}, ErrNotFound
	}
	return r.items[idx], nil
}

// FindByBarcode returns the first item carrying barcode.
func (r *Repository) FindByBarcode(barcode string) (models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx := r.indexWhere(func(it models.InventoryItem) bool {
		return it.Barcode != nil && *it.Barcode == barcode
	})
	if idx < 0 {
		return models.InventoryItem{}, ErrNotFound
	}
	return r.items[idx], nil
}

// Add stores item. An existing item with the same name and expiry date absorbs
// the quantity instead of creating a second row.
func (r *Repository) Add(item models.InventoryItem) models.InventoryItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexWhere(func(it models.InventoryItem) bool {
		return it.Name == item.Name && sameDate(it.ExpiryDate, item.ExpiryDate)
	})
	if idx >= 0 {
		r.items[idx].Quantity += item.Quantity
		return r.items[idx]
	}

	item.ID = r.nextItem
	r.nextItem++
	r.items = append(r.items, item)
	return item
}

// Delete removes the item with id. Missing ids are ignored.
func (r *Repository) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexByID(id)
	if idx < 0 {
		return
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
}

// SellByBarcode decrements the item carrying barcode by amount and records the sale.
func (r *Repository) SellByBarcode(barcode string, amount int) (models.InventoryItem, error) {
	return r.sell(func(it models.InventoryItem) bool {
		return it.Barcode != nil && *it.Barcode == barcode
	}, amount)
}

// SellByName decrements the first item named name by amount and records the sale.
func (r *Repository) SellByName(name string, amount int) (models.InventoryItem, error) {
	return r.sell(func(it models.InventoryItem) bool { return it.Name == name }, amount)
}

func (r *Repository) sell(match func(models.InventoryItem) bool, amount int) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexWhere(match)
	if idx < 0 {
		return models.InventoryItem{}, ErrNotFound
	}
	if amount < 1 || r.items[idx].Quantity < amount {
		return models.InventoryItem{}, ErrInsufficientStock
	}

	r.items[idx].Quantity -= amount
	r.sales = append(r.sales, Sale{
		ID:           r.nextSale,
		ItemID:       r.items[idx].ID,
		SaleDate:     r.now().UTC(),
		QuantitySold: amount,
	})
	r.nextSale++
	return r.items[idx], nil
}

// UpdateSupplier sets the supplier and reorder quantity of one item.
func (r *Repository) UpdateSupplier(id int64, supplier string, orderQuantity int) (models.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx := r.indexByID(id)
	if idx < 0 {
		return models.InventoryItem{}, ErrNotFound
	}
	r.items[idx].Supplier = &supplier
	r.items[idx].OrderQuantity = &orderQuantity
	return r.items[idx], nil
}

// Threshold returns the server copy of the warning threshold.
func (r *Repository) Threshold() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.threshold
}

// SetThreshold replaces the warning threshold.
func (r *Repository) SetThreshold(t int) error {
	if t < 1 {
		return ErrInvalidThreshold
	}
	r.mu.Lock()
	r.threshold = t
	r.mu.Unlock()
	return nil
}

// SalesByItem sums units sold per item name. Every item appears, unsold ones with zero.
func (r *Repository) SalesByItem() models.Series {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := models.Series{}
	pos := make(map[string]int, len(r.items))
	for _, it := range r.items {
		if _, ok := pos[it.Name]; ok {
			continue
		}
		pos[it.Name] = len(out)
		out = append(out, models.Point{Label: it.Name})
	}
	for _, s := range r.sales {
		idx := r.indexByID(s.ItemID)
		if idx < 0 {
			continue
		}
		out[pos[r.items[idx].Name]].Value += float64(s.QuantitySold)
	}
	return out
}

// InventoryLevels maps item names to their quantity. A repeated name keeps the last quantity.
func (r *Repository) InventoryLevels() models.Series {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := models.Series{}
	pos := make(map[string]int, len(r.items))
	for _, it := range r.items {
		if i, ok := pos[it.Name]; ok {
			out[i].Value = float64(it.Quantity)
			continue
		}
		pos[it.Name] = len(out)
		out = append(out, models.Point{Label: it.Name, Value: float64(it.Quantity)})
	}
	return out
}

// LowStock lists items strictly below the server threshold with their quantity.
func (r *Repository) LowStock() models.Series {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := models.Series{}
	for _, it := range r.items {
		if it.Quantity < r.threshold {
			out = append(out, models.Point{Label: it.Name, Value: float64(it.Quantity)})
		}
	}
	return out
}

// LowStockNames returns the names from LowStock without duplicates.
func (r *Repository) LowStockNames() []string {
	seen := map[string]bool{}
	names := []string{}
	for _, p := range r.LowStock() {
		if !seen[p.Label] {
			seen[p.Label] = true
			names = append(names, p.Label)
		}
	}
	return names
}

// BelowRestockLevel returns items whose quantity is under their own restock threshold.
func (r *Repository) BelowRestockLevel() []models.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.InventoryItem
	for _, it := range r.items {
		if it.RestockThreshold != nil && it.Quantity < *it.RestockThreshold {
			out = append(out, it)
		}
	}
	return out
}

func (r *Repository) indexByID(id int64) int {
	return r.indexWhere(func(it models.InventoryItem) bool { return it.ID == id })
}

func (r *Repository) indexWhere(match func(models.InventoryItem) bool) int {
	for i, it := range r.items {
		if match(it) {
			return i
		}
	}
	return -1
}

func sameDate(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
