package server

import (
	"context"
	"log/slog"
	"net/http"

	"nhl-scoreboard/internal/assets"
	"nhl-scoreboard/internal/config"
	"nhl-scoreboard/internal/display"
	httpserver "nhl-scoreboard/internal/http"
	"nhl-scoreboard/internal/http/handlers"
	"nhl-scoreboard/internal/http/middleware"
	"nhl-scoreboard/internal/ingest"
	"nhl-scoreboard/internal/logging"
	"nhl-scoreboard/internal/metrics"
	"nhl-scoreboard/internal/panel"
	"nhl-scoreboard/internal/providers"
	"nhl-scoreboard/internal/settings"
	"nhl-scoreboard/internal/store"
	"nhl-scoreboard/internal/stream"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.Store
	director      *display.Director
	hub           *stream.Hub
	schedule      Poller
	live          Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New wires the full scoreboard: store, display loop, pollers, frame stream
// and the admin API.
func New(cfg config.Config, logger *slog.Logger) *Server {
	scheduleProv, liveProv := buildProviders(cfg, logger)
	return newServerWithProviders(cfg, logger, scheduleProv, liveProv)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, scheduleProv, liveProv providers.FeedProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, nil)

	settingsStore := settings.NewFSStore(cfg.SettingsDir)
	// A stale persisted selection must not drive the panel after a restart.
	if err := settingsStore.Reset(); err != nil {
		logging.Warn(logger, "failed to reset persisted selection", slog.Any("err", err))
	}

	boardStore := store.New()
	logos := assets.NewLogoCache(cfg.LogoDir)
	hub := stream.NewHub(logger, recorder)
	sink := stream.NewSink(hub, 0)
	pnl := panel.New(cfg.PanelWidth, cfg.PanelHeight, sink)
	director := display.New(boardStore, logos, pnl, recorder, logger).WithFrameInterval(cfg.FrameInterval)

	schedule := ingest.NewSchedulePoller(scheduleProv, boardStore, boardStore, logger, recorder, cfg.ScheduleInterval)
	live := ingest.NewPlayByPlayPoller(liveProv, boardStore, boardStore, logger, recorder, cfg.PlayByPlayInterval)

	handler := handlers.NewHandler(boardStore, director, schedule, live, settingsStore, logger)
	router := httpserver.NewRouter(handler, stream.Handler(hub, logger))
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         boardStore,
		director:      director,
		hub:           hub,
		schedule:      schedule,
		live:          live,
		httpServer:    netHTTPServer{srv: srv},
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

// Run starts the display loop, pollers and HTTP servers, then waits for
// context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	go s.hub.Run(ctx)
	go s.director.Run(ctx)
	s.schedule.Start(ctx)
	s.live.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.schedule.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop schedule poller", "error", err)
	}
	if err := s.live.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop play-by-play poller", "error", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
