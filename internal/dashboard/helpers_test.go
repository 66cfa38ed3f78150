package dashboard

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/01moynul/stockdash/internal/apiclient"
	"github.com/01moynul/stockdash/internal/apitest"
	"github.com/01moynul/stockdash/internal/models"
	"github.com/01moynul/stockdash/internal/threshold"
)

type recordingUI struct {
	mu          sync.Mutex
	alerts      []string
	predictions []string
	confirm     map[int64]bool
	charts      map[string]models.Chart
}

func newRecordingUI() *recordingUI {
	return &recordingUI{confirm: map[int64]bool{}, charts: map[string]models.Chart{}}
}

func (u *recordingUI) Alert(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.alerts = append(u.alerts, message)
}

func (u *recordingUI) ShowPrediction(text string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.predictions = append(u.predictions, text)
}

func (u *recordingUI) ShowDeleteConfirmation(itemID int64, open bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.confirm[itemID] = open
}

func (u *recordingUI) RenderChart(chart models.Chart) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.charts[chart.ID] = chart
}

func (u *recordingUI) Alerts() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.alerts...)
}

func (u *recordingUI) LastAlert() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.alerts) == 0 {
		return ""
	}
	return u.alerts[len(u.alerts)-1]
}

func (u *recordingUI) Predictions() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.predictions...)
}

func (u *recordingUI) Chart(id string) (models.Chart, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	c, ok := u.charts[id]
	return c, ok
}

func (u *recordingUI) ConfirmationOpen(id int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.confirm[id]
}

type fixture struct {
	dash  *Dashboard
	srv   *apitest.Server
	ui    *recordingUI
	store *threshold.MemoryStore
	logs  *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := apitest.NewServer(t)
	client, err := apiclient.New(srv.URL)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return newFixtureWithBackend(t, srv, client)
}

// newOfflineFixture points the dashboard at a port nothing listens on.
func newOfflineFixture(t *testing.T) *fixture {
	t.Helper()
	client, err := apiclient.New("http://127.0.0.1:1")
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return newFixtureWithBackend(t, nil, client)
}

func newFixtureWithBackend(t *testing.T, srv *apitest.Server, backend Backend) *fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	ui := newRecordingUI()
	store := threshold.NewMemoryStore()
	dash, err := New(Options{Backend: backend, Store: store, UI: ui, Logger: zap.New(core)})
	if err != nil {
		t.Fatalf("Failed to create dashboard: %v", err)
	}
	return &fixture{dash: dash, srv: srv, ui: ui, store: store, logs: logs}
}

func strPtr(s string) *string { return &s }
