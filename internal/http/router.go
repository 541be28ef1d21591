package http

import (
	nethttp "net/http"

	"nhl-scoreboard/internal/http/handlers"
)

// NewRouter registers the admin API and frame stream routes on a ServeMux.
func NewRouter(handler *handlers.Handler, stream nethttp.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/select-game", handler.SelectGame)
	mux.HandleFunc("/api/selected-game", handler.SelectedGame)
	mux.HandleFunc("/api/display-power", handler.DisplayPower)
	mux.HandleFunc("/api/preview-goal", handler.PreviewGoal)
	mux.HandleFunc("/api/schedule", handler.Schedule)
	mux.HandleFunc("/api/playbyplay", handler.PlayByPlay)
	if stream != nil {
		mux.Handle("/ws", stream)
	}
	return mux
}
