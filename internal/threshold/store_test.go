package threshold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve_DefaultsWhenEmpty(t *testing.T) {
	ctx := context.Background()
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "nested", "threshold.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			v, err := Resolve(ctx, store)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if v != DefaultValue {
				t.Errorf("Expected default %d, got %d", DefaultValue, v)
			}

			if err := store.Set(ctx, 3); err != nil {
				t.Fatalf("Unexpected set error: %v", err)
			}
			v, err = Resolve(ctx, store)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if v != 3 {
				t.Errorf("Expected 3, got %d", v)
			}
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "threshold.json")

	if err := NewFileStore(path).Set(ctx, 9); err != nil {
		t.Fatalf("Unexpected set error: %v", err)
	}

	v, ok, err := NewFileStore(path).Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Expected stored value, got ok=%v err=%v", ok, err)
	}
	if v != 9 {
		t.Errorf("Expected 9, got %d", v)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected read error: %v", err)
	}
	if want := `"stockThreshold": "9"`; !strings.Contains(string(payload), want) {
		t.Errorf("Expected file to contain %s, got %s", want, payload)
	}
}

func TestFileStore_InvalidContent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "threshold.json")
	if err := os.WriteFile(path, []byte(`{"stockThreshold": "lots"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if _, _, err := store.Get(ctx); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Expected ErrInvalidValue, got %v", err)
	}
	v, err := Resolve(ctx, store)
	if err == nil || v != DefaultValue {
		t.Errorf("Expected default with error, got %d, %v", v, err)
	}

	if err := store.Set(ctx, 4); err != nil {
		t.Fatalf("Expected set to replace a bad value, got %v", err)
	}
	if v, _, _ := store.Get(ctx); v != 4 {
		t.Errorf("Expected 4, got %d", v)
	}
}
