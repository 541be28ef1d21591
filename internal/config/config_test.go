package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.ScheduleInterval != defaultScheduleInterval {
		t.Fatalf("expected default schedule interval %s, got %s", defaultScheduleInterval, cfg.ScheduleInterval)
	}
	if cfg.PlayByPlayInterval != defaultPbpInterval {
		t.Fatalf("expected default pbp interval %s, got %s", defaultPbpInterval, cfg.PlayByPlayInterval)
	}
	if cfg.FrameInterval != defaultFrameInterval {
		t.Fatalf("expected default frame interval %s, got %s", defaultFrameInterval, cfg.FrameInterval)
	}
	if cfg.PanelWidth != defaultPanelWidth || cfg.PanelHeight != defaultPanelHeight {
		t.Fatalf("expected default panel %dx%d, got %dx%d", defaultPanelWidth, defaultPanelHeight, cfg.PanelWidth, cfg.PanelHeight)
	}
	if cfg.NHL.BaseURL != defaultNHLBaseURL {
		t.Fatalf("expected default NHL base url %s, got %s", defaultNHLBaseURL, cfg.NHL.BaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envScheduleInterval, "45s")
	t.Setenv(envPbpInterval, "2s")
	t.Setenv(envPanelWidth, "128")
	t.Setenv(envNHLBaseURL, "http://example.com/v1")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if cfg.ScheduleInterval != 45*time.Second {
		t.Fatalf("expected schedule interval 45s, got %s", cfg.ScheduleInterval)
	}
	if cfg.PlayByPlayInterval != 2*time.Second {
		t.Fatalf("expected pbp interval 2s, got %s", cfg.PlayByPlayInterval)
	}
	if cfg.PanelWidth != 128 {
		t.Fatalf("expected panel width 128, got %d", cfg.PanelWidth)
	}
	if cfg.NHL.BaseURL != "http://example.com/v1" {
		t.Fatalf("expected NHL base url override, got %s", cfg.NHL.BaseURL)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envFrameInterval, "not-a-duration")

	cfg := Load()

	if cfg.FrameInterval != defaultFrameInterval {
		t.Fatalf("expected default frame interval on invalid value, got %s", cfg.FrameInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPbpInterval, "0s")

	cfg := Load()

	if cfg.PlayByPlayInterval != defaultPbpInterval {
		t.Fatalf("expected default pbp interval on non-positive value, got %s", cfg.PlayByPlayInterval)
	}
}
