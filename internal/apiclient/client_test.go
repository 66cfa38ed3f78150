package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/01moynul/stockdash/internal/models"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL + "/")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

func TestNew_RequiresAbsoluteURL(t *testing.T) {
	for _, raw := range []string{"", "localhost", "/api"} {
		if _, err := New(raw); err == nil {
			t.Errorf("Expected error for %q", raw)
		}
	}

	c, err := New("http://example.test/api/")
	if err != nil {
		t.Fatal(err)
	}
	if got := c.URL("/get_items"); got != "http://example.test/api/get_items" {
		t.Errorf("Unexpected URL %s", got)
	}
}

func TestGetItems_CacheBusterAndDecode(t *testing.T) {
	var query string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query().Get("_")
		_, _ = io.WriteString(w, `[{"name":"Milk","quantity":3}]`)
	})

	items, err := c.GetItems(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if query == "" {
		t.Error("Expected a cache-busting parameter")
	}
	if len(items) != 1 || items[0].Name != "Milk" || items[0].Quantity != 3 {
		t.Errorf("Unexpected items %+v", items)
	}
}

func TestRecordSale_RoutesByIdentifier(t *testing.T) {
	testCases := []struct {
		name       string
		req        models.SaleRequest
		expectPath string
		expectBody string
	}{
		{"barcode", models.SaleRequest{Barcode: "12345678", Amount: 2}, "/sale_barcode", `{"barcode":"12345678","amount":2}`},
		{"name", models.SaleRequest{Name: "Widget", Amount: 2}, "/sale_name", `{"name":"Widget","amount":2}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var path, body string
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				b, _ := io.ReadAll(r.Body)
				body = string(b)
				_, _ = io.WriteString(w, `{"success":true}`)
			})

			resp, err := c.RecordSale(context.Background(), tc.req)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !resp.Success {
				t.Error("Expected success")
			}
			if path != tc.expectPath || body != tc.expectBody {
				t.Errorf("Expected %s %s, got %s %s", tc.expectPath, tc.expectBody, path, body)
			}
		})
	}
}

func TestDo_DecodesErrorStatusBodies(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"success":false,"message":"Invalid threshold value"}`)
	})

	resp, err := c.SetThreshold(context.Background(), 0)
	if err != nil {
		t.Fatalf("Expected the body to be decoded, got %v", err)
	}
	if resp.Success || resp.Message != "Invalid threshold value" {
		t.Errorf("Unexpected response %+v", resp)
	}
}

func TestDo_TransportErrors(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})
	if _, err := c.LowStock(context.Background()); !errors.Is(err, ErrTransport) {
		t.Errorf("Expected ErrTransport for a non-JSON body, got %v", err)
	}

	offline, err := New("http://127.0.0.1:1")
	if err != nil {
		t.Fatal(err)
	}
	if err := offline.Ping(context.Background()); !errors.Is(err, ErrTransport) {
		t.Errorf("Expected ErrTransport when unreachable, got %v", err)
	}
}

func TestWithTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = io.WriteString(w, `{}`)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	c, err := New(srv.URL, WithTimeout(50*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.AutoRestock(context.Background()); !errors.Is(err, ErrTransport) {
		t.Errorf("Expected a timeout to surface as ErrTransport, got %v", err)
	}
}

func TestAddItems_FormEncoding(t *testing.T) {
	var form map[string][]string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/add" {
			_ = r.ParseForm()
			form = r.PostForm
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		_, _ = io.WriteString(w, `{"items":[]}`)
	})

	rows := []models.NewItemRow{
		{Name: "Milk", Quantity: "4", ExpiryDate: "2026-11-30"},
		{Barcode: "12345678", Name: "Bread", Quantity: "1"},
	}
	resp, err := c.AddItems(context.Background(), rows)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !resp.Success {
		t.Errorf("Expected success, got %+v", resp)
	}
	if got := strings.Join(form["name[]"], ","); got != "Milk,Bread" {
		t.Errorf("Unexpected names %s", got)
	}
	if got := strings.Join(form["barcode[]"], ","); got != ",12345678" {
		t.Errorf("Unexpected barcodes %s", got)
	}
}

func TestAddItems_ErrorBody(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"Product name is required"}`)
	})

	resp, err := c.AddItems(context.Background(), []models.NewItemRow{{Quantity: "1"}})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.Success || resp.Message != "Product name is required" {
		t.Errorf("Unexpected response %+v", resp)
	}
}

func TestDelete_FollowsRedirect(t *testing.T) {
	var paths []string
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if strings.HasPrefix(r.URL.Path, "/delete/") {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	})

	if err := c.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if strings.Join(paths, " ") != "/delete/9 /dashboard" {
		t.Errorf("Unexpected request sequence %v", paths)
	}
}

func TestWithTimeout_OptionOrder(t *testing.T) {
	shared := &http.Client{}

	for name, opts := range map[string][]Option{
		"timeout first": {WithTimeout(time.Second), WithHTTPClient(shared)},
		"timeout last":  {WithHTTPClient(shared), WithTimeout(time.Second)},
	} {
		t.Run(name, func(t *testing.T) {
			c, err := New("http://example.test", opts...)
			if err != nil {
				t.Fatal(err)
			}
			if c.http.Timeout != time.Second {
				t.Errorf("Expected timeout 1s, got %v", c.http.Timeout)
			}
			if shared.Timeout != 0 {
				t.Errorf("Expected the shared client untouched, got timeout %v", shared.Timeout)
			}
		})
	}
}
