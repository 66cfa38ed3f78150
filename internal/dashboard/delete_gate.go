package dashboard

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DeletionGate puts an explicit confirmation in front of deleting an item.
type DeletionGate struct {
	d *Dashboard

	mu      sync.Mutex
	pending *int64
}

// RequestDelete marks id for deletion and opens the confirmation. A second
// request before confirming replaces the target.
func (g *DeletionGate) RequestDelete(id int64) {
	g.mu.Lock()
	g.pending = &id
	g.mu.Unlock()
	g.d.ui.ShowDeleteConfirmation(id, true)
}

// Cancel clears the pending target and closes the confirmation.
func (g *DeletionGate) Cancel() {
	g.mu.Lock()
	var id int64
	if g.pending != nil {
		id = *g.pending
	}
	g.pending = nil
	g.mu.Unlock()
	g.d.ui.ShowDeleteConfirmation(id, false)
}

// Pending returns the target awaiting confirmation.
func (g *DeletionGate) Pending() (int64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return 0, false
	}
	return *g.pending, true
}

// Confirm performs the delete for the pending target and resyncs. Without a
// pending target it does nothing.
func (g *DeletionGate) Confirm(ctx context.Context) error {
	id, ok := g.Pending()
	if !ok {
		return nil
	}

	if err := g.d.backend.Delete(ctx, id); err != nil {
		g.d.logger.Error("delete navigation failed", zap.Int64("item_id", id), zap.Error(err))
		return err
	}

	g.mu.Lock()
	if g.pending != nil && *g.pending == id {
		g.pending = nil
	}
	g.mu.Unlock()
	g.d.ui.ShowDeleteConfirmation(id, false)

	return g.d.Resync(ctx)
}
