package server

import (
	"log/slog"
	"time"

	"nhl-scoreboard/internal/config"
	"nhl-scoreboard/internal/providers"
	"nhl-scoreboard/internal/providers/fixture"
	"nhl-scoreboard/internal/providers/nhlweb"
)

const (
	// upstreamMinSpacing keeps the schedule and play-by-play loops from
	// hitting the NHL API back to back.
	upstreamMinSpacing = time.Second

	scheduleRetryAttempts   = 5
	scheduleRetryBase       = 700 * time.Millisecond
	playByPlayRetryAttempts = 3
	playByPlayRetryBase     = time.Second
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.FeedProvider {
	switch cfg.Provider {
	case "fixture":
		return fixture.New()
	case "nhlweb", "":
		return nhlweb.NewClient(nhlweb.Config{BaseURL: cfg.NHL.BaseURL})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to nhlweb", slog.String("provider", cfg.Provider))
		}
		return nhlweb.NewClient(nhlweb.Config{BaseURL: cfg.NHL.BaseURL})
	}
}

// buildProviders assembles the upstream feed with shared wrappers. Both
// pollers share one rate limiter but carry their own retry policy.
func buildProviders(cfg config.Config, logger *slog.Logger) (schedule, live providers.FeedProvider) {
	base := selectProvider(cfg, logger)
	limited := providers.NewRateLimitedProvider(base, upstreamMinSpacing, logger)
	schedule = providers.NewRetryingProvider(limited, logger, scheduleRetryAttempts, scheduleRetryBase)
	live = providers.NewRetryingProvider(limited, logger, playByPlayRetryAttempts, playByPlayRetryBase)
	return schedule, live
}
