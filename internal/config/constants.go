package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "DATA_PROVIDER"
	envScheduleInterval = "SCHEDULE_POLL_INTERVAL"
	envPbpInterval      = "PBP_POLL_INTERVAL"
	envFrameInterval    = "FRAME_INTERVAL"
	envPanelWidth       = "PANEL_WIDTH"
	envPanelHeight      = "PANEL_HEIGHT"
	envLogoDir          = "LOGO_DIR"
	envSettingsDir      = "SETTINGS_DIR"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort     = "8080"
	defaultProvider = "nhlweb"
	// Schedule cadence when no game is selected; the upstream scoreboard feed
	// changes slowly outside of live play.
	defaultScheduleInterval = 30 * Duration(time.Second)
	// Play-by-play cadence while a game is selected.
	defaultPbpInterval = 5 * Duration(time.Second)
	// ~30 fps display tick.
	defaultFrameInterval = 33 * Duration(time.Millisecond)
	defaultPanelWidth    = 64
	defaultPanelHeight   = 32
	defaultLogoDir       = "data/logos"
	defaultSettingsDir   = "data"
	defaultMetricsPort   = "9090"
)
