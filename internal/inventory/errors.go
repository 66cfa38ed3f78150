package inventory

import "errors"

var (
	// ErrNotFound is returned when no item matches the id, barcode or name.
	ErrNotFound = errors.New("inventory item not found")
	// ErrInsufficientStock is returned when a sale exceeds the stock on hand.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidThreshold is returned for thresholds below one.
	ErrInvalidThreshold = errors.New("invalid threshold value")
)
