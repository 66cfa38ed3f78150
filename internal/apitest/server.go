// Package apitest runs the real dev API router behind httptest for client-side tests.
package apitest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/01moynul/stockdash/internal/handlers"
	"github.com/01moynul/stockdash/internal/inventory"
	"github.com/01moynul/stockdash/internal/models"
	"github.com/01moynul/stockdash/internal/routes"
)

// StubForecaster returns a fixed prediction or error and counts calls.
type StubForecaster struct {
	mu         sync.Mutex
	Prediction string
	Err        error
	calls      int
	last       []models.ForecastItem
}

func (f *StubForecaster) Forecast(_ context.Context, items []models.ForecastItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = items
	return f.Prediction, f.Err
}

// Calls returns how many forecasts were requested.
func (f *StubForecaster) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// Last returns the items of the most recent forecast.
func (f *StubForecaster) Last() []models.ForecastItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

// Server records every request path and body before handing it to the router.
// Overrides replace the router for one path.
type Server struct {
	*httptest.Server
	Repo       *inventory.Repository
	Forecaster *StubForecaster

	mu        sync.Mutex
	hits      map[string]int
	bodies    map[string]string
	overrides map[string]http.HandlerFunc
}

// NewServer starts a server with an empty repository. It is closed on test cleanup.
func NewServer(t testing.TB) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard

	s := &Server{
		Repo:       inventory.NewRepository(),
		Forecaster: &StubForecaster{Prediction: "Restock milk."},
		hits:       map[string]int{},
		bodies:     map[string]string{},
		overrides:  map[string]http.HandlerFunc{},
	}
	h := &handlers.Handlers{Repo: s.Repo, Forecaster: s.Forecaster, Logger: zap.NewNop()}
	router := routes.SetupRouter(h, "*")

	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.bodies[r.URL.Path] = string(body)
		override := s.overrides[r.URL.Path]
		s.mu.Unlock()

		if override != nil {
			override(w, r)
			return
		}
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Override answers every request to path with a fixed status and JSON body.
func (s *Server) Override(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

// Hits returns how many requests reached path.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// TotalHits returns the number of requests across all paths.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, n := range s.hits {
		total += n
	}
	return total
}

// LastBody returns the body of the most recent request to path.
func (s *Server) LastBody(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[path]
}

// Reset clears the recorded hits and bodies.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hits = map[string]int{}
	s.bodies = map[string]string{}
}

// Seed adds items to the repository.
func (s *Server) Seed(items ...models.InventoryItem) {
	for _, item := range items {
		s.Repo.Add(item)
	}
}
