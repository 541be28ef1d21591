package server

import (
	"context"

	"nhl-scoreboard/internal/ingest"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() ingest.Status
}
