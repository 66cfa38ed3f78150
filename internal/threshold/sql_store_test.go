package threshold

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/01moynul/stockdash/internal/database"
)

// Set THRESHOLD_TEST_DSN to a disposable MySQL database to run these tests.
func openTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	dsn := os.Getenv("THRESHOLD_TEST_DSN")
	if dsn == "" {
		t.Skip("THRESHOLD_TEST_DSN not set")
	}
	db, err := database.OpenDBWithDSN(database.Config{
		DSN:             dsn,
		MaxOpenConns:    2,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewSQLStore(db)
	ctx := context.Background()
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	// Running it twice must be harmless.
	if err := store.EnsureSchema(ctx); err != nil {
		t.Fatalf("Expected EnsureSchema to be idempotent, got %v", err)
	}
	if _, err := db.ExecContext(ctx, "DELETE FROM settings WHERE setting_key = ?", Key); err != nil {
		t.Fatalf("Failed to reset settings: %v", err)
	}
	return store
}

func TestSQLStore_RoundTrip(t *testing.T) {
	store := openTestSQLStore(t)
	ctx := context.Background()

	if v, err := Resolve(ctx, store); err != nil || v != DefaultValue {
		t.Fatalf("Expected default %d, got %d (%v)", DefaultValue, v, err)
	}

	for _, want := range []int{3, 12} {
		if err := store.Set(ctx, want); err != nil {
			t.Fatalf("Unexpected set error: %v", err)
		}
		got, ok, err := store.Get(ctx)
		if err != nil || !ok || got != want {
			t.Errorf("Expected %d, got %d ok=%v err=%v", want, got, ok, err)
		}
	}
}

func TestSQLStore_InvalidContent(t *testing.T) {
	store := openTestSQLStore(t)
	ctx := context.Background()

	if _, err := store.db.ExecContext(ctx,
		"INSERT INTO settings (setting_key, setting_value) VALUES (?, ?)", Key, "lots"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := store.Get(ctx); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}
}
