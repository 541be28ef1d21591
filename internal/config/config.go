package config

// Config holds runtime configuration for the scoreboard service.
type Config struct {
	Port               string
	Provider           string
	ScheduleInterval   Duration
	PlayByPlayInterval Duration
	FrameInterval      Duration
	PanelWidth         int
	PanelHeight        int
	LogoDir            string
	SettingsDir        string
	NHL                NHLConfig
	Metrics            MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:               envOrDefault(envPort, defaultPort),
		Provider:           envOrDefault(envProvider, defaultProvider),
		ScheduleInterval:   durationEnvOrDefault(envScheduleInterval, defaultScheduleInterval),
		PlayByPlayInterval: durationEnvOrDefault(envPbpInterval, defaultPbpInterval),
		FrameInterval:      durationEnvOrDefault(envFrameInterval, defaultFrameInterval),
		PanelWidth:         intEnvOrDefault(envPanelWidth, defaultPanelWidth),
		PanelHeight:        intEnvOrDefault(envPanelHeight, defaultPanelHeight),
		LogoDir:            envOrDefault(envLogoDir, defaultLogoDir),
		SettingsDir:        envOrDefault(envSettingsDir, defaultSettingsDir),
		NHL:                loadNHL(),
		Metrics:            loadMetrics(),
	}
}
