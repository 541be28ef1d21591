package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nhl-scoreboard/internal/config"
	"nhl-scoreboard/internal/ingest"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:               "0",
		Provider:           "fixture",
		ScheduleInterval:   30 * time.Second,
		PlayByPlayInterval: 5 * time.Second,
		FrameInterval:      33 * time.Millisecond,
		PanelWidth:         64,
		PanelHeight:        32,
		LogoDir:            t.TempDir(),
		SettingsDir:        t.TempDir(),
		Metrics:            config.MetricsConfig{Enabled: false},
	}
}

func TestNewServerWiring(t *testing.T) {
	cfg := testConfig(t)
	srv := New(cfg, nil)

	handler := srv.Handler()
	if handler == nil {
		t.Fatalf("expected handler")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthy server, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/selected-game", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"gameId":0`) {
		t.Fatalf("expected no selection at boot, got %s", rec.Body.String())
	}
}

func TestNewServerResetsPersistedSelection(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(cfg.SettingsDir, "scoreboard.json")
	if err := os.WriteFile(path, []byte(`{"gameId":2024020123}`), 0o644); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	New(cfg, nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if !strings.Contains(string(data), `"gameId":0`) {
		t.Fatalf("expected selection reset at boot, got %s", data)
	}
}

func TestSelectGameRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	srv := New(cfg, nil)
	handler := srv.Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/select-game", strings.NewReader(`{"gameId":2024029999}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := srv.store.SelectedGameID(); got != 2024029999 {
		t.Fatalf("expected selection stored, got %d", got)
	}

	data, err := os.ReadFile(filepath.Join(cfg.SettingsDir, "scoreboard.json"))
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if !strings.Contains(string(data), `"gameId":2024029999`) {
		t.Fatalf("expected selection persisted, got %s", data)
	}
}

func TestBuildProviders(t *testing.T) {
	for _, provider := range []string{"fixture", "nhlweb", "", "bogus"} {
		cfg := config.Config{Provider: provider}
		schedule, live := buildProviders(cfg, nil)
		if schedule == nil || live == nil {
			t.Fatalf("expected providers for %q", provider)
		}
	}
}

type stubHTTPServer struct {
	shutdowns int
	serveErr  error
}

func (s *stubHTTPServer) ListenAndServe() error          { return s.serveErr }
func (s *stubHTTPServer) Shutdown(context.Context) error { s.shutdowns++; return nil }
func (s *stubHTTPServer) Addr() string                   { return ":0" }
func (s *stubHTTPServer) Handler() http.Handler          { return nil }

type stubPoller struct {
	stops int
}

func (p *stubPoller) Start(context.Context)      {}
func (p *stubPoller) Stop(context.Context) error { p.stops++; return nil }
func (p *stubPoller) Status() ingest.Status      { return ingest.Status{} }

func TestGracefulShutdownStopsComponents(t *testing.T) {
	httpSrv := &stubHTTPServer{}
	schedule := &stubPoller{}
	live := &stubPoller{}
	srv := &Server{
		httpServer: httpSrv,
		schedule:   schedule,
		live:       live,
	}

	srv.gracefulShutdown()

	if schedule.stops != 1 || live.stops != 1 {
		t.Fatalf("expected both pollers stopped, got %d and %d", schedule.stops, live.stops)
	}
	if httpSrv.shutdowns != 1 {
		t.Fatalf("expected http server shutdown, got %d", httpSrv.shutdowns)
	}
}

func TestLaunchServerReportsFailure(t *testing.T) {
	var failed error
	done := make(chan struct{})
	launchServer("test", &stubHTTPServer{serveErr: http.ErrAbortHandler}, nil, func(err error) {
		failed = err
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected launch failure callback")
	}
	if failed != http.ErrAbortHandler {
		t.Fatalf("expected serve error surfaced, got %v", failed)
	}
}

func TestBuildMetricsDisabled(t *testing.T) {
	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: false}}
	rec, srv, stop := buildMetrics(cfg, nil, nil)
	if rec == nil {
		t.Fatalf("expected recorder even when disabled")
	}
	if srv != nil {
		t.Fatalf("expected no metrics server when disabled")
	}
	if stop == nil {
		t.Fatalf("expected shutdown func")
	}
}
