package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/01moynul/stockdash/internal/apiclient"
	"github.com/01moynul/stockdash/internal/models"
)

func TestNew_RequiresBackendAndUI(t *testing.T) {
	if _, err := New(Options{UI: newRecordingUI()}); err == nil {
		t.Error("Expected error without backend")
	}
	client, _ := apiclient.New("http://localhost:8080")
	if _, err := New(Options{Backend: client}); err == nil {
		t.Error("Expected error without UI")
	}
	if _, err := New(Options{Backend: client, UI: newRecordingUI()}); err != nil {
		t.Errorf("Expected defaults for store and logger, got %v", err)
	}
}

func TestWarningVisible_Property(t *testing.T) {
	for th := 1; th <= 20; th++ {
		for q := -5; q <= 30; q++ {
			if got, want := WarningVisible(q, th), q <= th; got != want {
				t.Fatalf("WarningVisible(%d, %d) = %v, expected %v", q, th, got, want)
			}
		}
	}
}

func TestLoad_ThresholdScenario(t *testing.T) {
	f := newFixture(t)
	f.srv.Seed(
		models.InventoryItem{Name: "Milk", Quantity: 2},
		models.InventoryItem{Name: "Bread", Quantity: 3},
		models.InventoryItem{Name: "Rice", Quantity: 4},
	)
	ctx := context.Background()
	if err := f.store.Set(ctx, 3); err != nil {
		t.Fatal(err)
	}

	if err := f.dash.Load(ctx); err != nil {
		t.Fatalf("Unexpected load error: %v", err)
	}

	expect := map[string]bool{"Milk": true, "Bread": true, "Rice": false}
	warnings := f.dash.Warnings()
	if len(warnings) != 3 {
		t.Fatalf("Expected 3 indicators, got %d", len(warnings))
	}
	for _, w := range warnings {
		if w.Visible != expect[w.ItemName] {
			t.Errorf("Expected %s visible=%v, got %v", w.ItemName, expect[w.ItemName], w.Visible)
		}
	}
	if f.srv.Hits("/set_threshold") != 0 {
		t.Error("Expected page load to read only the local threshold")
	}
}

func TestLoad_DefaultThresholdIsFive(t *testing.T) {
	f := newFixture(t)
	f.srv.Seed(
		models.InventoryItem{Name: "Milk", Quantity: 5},
		models.InventoryItem{Name: "Bread", Quantity: 6},
	)

	if err := f.dash.Load(context.Background()); err != nil {
		t.Fatalf("Unexpected load error: %v", err)
	}
	warnings := f.dash.Warnings()
	if !warnings[0].Visible || warnings[1].Visible {
		t.Errorf("Expected only quantity 5 flagged under default 5, got %+v", warnings)
	}
}

func TestApplyWarnings_NoIndicators(t *testing.T) {
	f := newFixture(t)
	if err := f.dash.ApplyWarnings(context.Background()); err != nil {
		t.Errorf("Expected no-op, got %v", err)
	}
	if len(f.dash.Warnings()) != 0 {
		t.Error("Expected no indicators")
	}
	if f.srv.TotalHits() != 0 {
		t.Error("Expected ApplyWarnings to make no requests")
	}
}

func TestLoad_OfflineStillAppliesWarnings(t *testing.T) {
	f := newOfflineFixture(t)
	err := f.dash.Load(context.Background())
	if !errors.Is(err, apiclient.ErrTransport) {
		t.Fatalf("Expected transport error, got %v", err)
	}
	if len(f.ui.Alerts()) != 0 {
		t.Errorf("Expected no alerts on page load failure, got %v", f.ui.Alerts())
	}
	if f.logs.FilterMessage("failed to fetch items").Len() != 1 {
		t.Error("Expected the item fetch failure to be logged")
	}
}

func TestSetThreshold_RejectsBadInput(t *testing.T) {
	for _, raw := range []string{"", "  ", "0", "-3", "abc", "2.5"} {
		t.Run(raw, func(t *testing.T) {
			f := newFixture(t)
			err := f.dash.SetThreshold(context.Background(), raw)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected validation error, got %v", err)
			}
			if f.srv.TotalHits() != 0 {
				t.Errorf("Expected no request, got %d", f.srv.TotalHits())
			}
			if f.ui.LastAlert() != MsgInvalidThreshold {
				t.Errorf("Expected %q, got %q", MsgInvalidThreshold, f.ui.LastAlert())
			}
			if _, ok, _ := f.store.Get(context.Background()); ok {
				t.Error("Expected the cache to stay empty")
			}
		})
	}
}

func TestSetThreshold_Success(t *testing.T) {
	f := newFixture(t)
	f.srv.Seed(
		models.InventoryItem{Name: "Milk", Quantity: 2},
		models.InventoryItem{Name: "Bread", Quantity: 3},
		models.InventoryItem{Name: "Rice", Quantity: 4},
	)
	ctx := context.Background()
	if err := f.dash.Load(ctx); err != nil {
		t.Fatal(err)
	}
	for _, w := range f.dash.Warnings() {
		if !w.Visible {
			t.Fatalf("Expected all visible under default 5, got %+v", w)
		}
	}

	if err := f.dash.SetThreshold(ctx, "3"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if f.srv.LastBody("/set_threshold") != `{"threshold":3}` {
		t.Errorf("Unexpected body %s", f.srv.LastBody("/set_threshold"))
	}
	if f.srv.Repo.Threshold() != 3 {
		t.Errorf("Expected server threshold 3, got %d", f.srv.Repo.Threshold())
	}
	if v, ok, _ := f.store.Get(ctx); !ok || v != 3 {
		t.Errorf("Expected cached 3, got %d (ok=%v)", v, ok)
	}
	if f.ui.LastAlert() != MsgThresholdSaved {
		t.Errorf("Expected %q, got %q", MsgThresholdSaved, f.ui.LastAlert())
	}
	if w := f.dash.Warnings()[2]; w.Visible {
		t.Errorf("Expected Rice hidden at threshold 3, got %+v", w)
	}
}

func TestSetThreshold_ServerFailureLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	f.srv.Seed(models.InventoryItem{Name: "Rice", Quantity: 4})
	ctx := context.Background()
	if err := f.dash.Load(ctx); err != nil {
		t.Fatal(err)
	}
	before := f.dash.Warnings()

	f.srv.Override("/set_threshold", 200, `{"success": false, "message": "settings locked"}`)
	err := f.dash.SetThreshold(ctx, "2")

	var serr *ServerError
	if !errors.As(err, &serr) || serr.Message != "settings locked" {
		t.Fatalf("Expected server error, got %v", err)
	}
	if f.ui.LastAlert() != "Error: settings locked" {
		t.Errorf("Unexpected alert %q", f.ui.LastAlert())
	}
	if _, ok, _ := f.store.Get(ctx); ok {
		t.Error("Expected the cache to stay empty")
	}
	if after := f.dash.Warnings(); after[0] != before[0] {
		t.Errorf("Expected indicators unchanged, got %+v then %+v", before, after)
	}
}

func TestSetThreshold_TransportFailureIsLoggedOnly(t *testing.T) {
	f := newOfflineFixture(t)
	err := f.dash.SetThreshold(context.Background(), "4")
	if !errors.Is(err, apiclient.ErrTransport) {
		t.Fatalf("Expected transport error, got %v", err)
	}
	if len(f.ui.Alerts()) != 0 {
		t.Errorf("Expected no alert, got %v", f.ui.Alerts())
	}
	if f.logs.FilterMessage("set threshold request failed").Len() != 1 {
		t.Error("Expected the failure to be logged")
	}
}

func TestLoad_ItemsCarryServerIDs(t *testing.T) {
	f := newFixture(t)
	f.srv.Seed(
		models.InventoryItem{Name: "Milk", Quantity: 2},
		models.InventoryItem{Name: "Rice", Quantity: 8},
	)
	ctx := context.Background()

	if err := f.dash.Load(ctx); err != nil {
		t.Fatalf("Unexpected load error: %v", err)
	}
	items := f.dash.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		stored, err := f.srv.Repo.Get(item.ID)
		if item.ID == 0 || err != nil || stored.Name != item.Name {
			t.Errorf("Expected %q to carry its server id, got %d", item.Name, item.ID)
		}
	}

	// The rendered id is enough to drive a delete.
	f.dash.Gate.RequestDelete(items[1].ID)
	if err := f.dash.Gate.Confirm(ctx); err != nil {
		t.Fatalf("Unexpected delete error: %v", err)
	}
	if got := f.dash.Items(); len(got) != 1 || got[0].Name != "Milk" {
		t.Errorf("Expected only Milk left, got %+v", got)
	}
}
