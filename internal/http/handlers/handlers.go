package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"nhl-scoreboard/internal/ingest"
	"nhl-scoreboard/internal/logging"
	"nhl-scoreboard/internal/settings"
)

const maxBodyBytes = 1 << 20

// SelectionStore tracks which game the board is following.
type SelectionStore interface {
	SelectedGameID() int64
	SetSelectedGame(id int64)
}

// DisplayControl drives the render loop's power state and demo overlay.
type DisplayControl interface {
	SetEnabled(enabled bool)
	Enabled() bool
	PreviewGoal() bool
}

// FeedCache serves the most recent upstream payload a poller produced.
type FeedCache interface {
	LastResponse() ([]byte, bool)
	Status() ingest.Status
}

// ScheduleCache adds slate lookups on top of the cached payload.
type ScheduleCache interface {
	FeedCache
	SeedSelection(id int64) bool
}

// SettingsStore persists the selected game across restarts.
type SettingsStore interface {
	Save(settings.Settings) error
}

// Handler wires the admin API routes to the scoreboard internals.
type Handler struct {
	sel      SelectionStore
	display  DisplayControl
	schedule ScheduleCache
	live     FeedCache
	settings SettingsStore
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(sel SelectionStore, display DisplayControl, schedule ScheduleCache, live FeedCache, settingsStore SettingsStore, logger *slog.Logger) *Handler {
	return &Handler{
		sel:      sel,
		display:  display,
		schedule: schedule,
		live:     live,
		settings: settingsStore,
		logger:   logger,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The board is ready once both pollers
// have produced data (or are paused waiting on a selection).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	for _, status := range []ingest.Status{h.schedule.Status(), h.live.Status()} {
		if status.IsReady() {
			continue
		}
		msg := status.LastError
		if msg == "" {
			msg = "not ready"
		}
		writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// SelectGame points the board at a game. A gameId of 0 deselects and lets the
// schedule slate resume.
func (h *Handler) SelectGame(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		writeError(w, r, http.StatusBadRequest, "body", logger)
		return
	}
	var req struct {
		GameID int64 `json:"gameId"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "json", logger)
		return
	}

	if h.settings != nil {
		if err := h.settings.Save(settings.Settings{GameID: req.GameID}); err != nil {
			logging.Warn(logger, "failed to persist selection",
				slog.Int64(logging.FieldGameID, req.GameID),
				slog.Any("err", err),
			)
		}
	}
	h.sel.SetSelectedGame(req.GameID)
	if req.GameID != 0 && h.schedule != nil {
		// Seed the display from the cached slate so the board shows the
		// matchup before the first live fetch lands.
		h.schedule.SeedSelection(req.GameID)
	}

	logging.Info(logger, "game selected", slog.Int64(logging.FieldGameID, req.GameID))
	writeJSON(w, http.StatusOK, map[string]any{}, logger)
}

func (h *Handler) SelectedGame(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"gameId": h.sel.SelectedGameID()}, h.logger)
}

// DisplayPower reads or toggles the panel power state. A POST without an
// explicit enabled field turns the panel on.
func (h *Handler) DisplayPower(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]bool{"enabled": h.display.Enabled()}, h.logger)
	case http.MethodPost:
		logger := loggerFromContext(r, h.logger)
		enabled := true
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "body", logger)
			return
		}
		if len(body) > 0 {
			var req struct {
				Enabled *bool `json:"enabled"`
			}
			if err := json.Unmarshal(body, &req); err != nil {
				writeError(w, r, http.StatusBadRequest, "json", logger)
				return
			}
			if req.Enabled != nil {
				enabled = *req.Enabled
			}
		}
		h.display.SetEnabled(enabled)
		logging.Info(logger, "display power set", slog.Bool("enabled", enabled))
		writeJSON(w, http.StatusOK, map[string]any{}, logger)
	default:
		writeError(w, r, http.StatusMethodNotAllowed, "method", h.logger)
	}
}

// PreviewGoal fires the goal overlay with placeholder names. Fails when no
// game snapshot is on the board.
func (h *Handler) PreviewGoal(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	if !h.display.PreviewGoal() {
		writeError(w, r, http.StatusConflict, "no_game", logger)
		return
	}
	logging.Info(logger, "goal preview triggered")
	writeJSON(w, http.StatusOK, map[string]any{}, logger)
}

// Schedule serves the last good slate payload, or 503 until the first fetch
// has landed.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, h.schedule)
}

// PlayByPlay serves the last good live feed payload for the selected game.
func (h *Handler) PlayByPlay(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, h.live)
}

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, cache FeedCache) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	body, ok := cache.LastResponse()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "warming", loggerFromContext(r, h.logger))
		return
	}
	writeRawJSON(w, http.StatusOK, body, h.logger)
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	writeError(w, r, http.StatusMethodNotAllowed, "method", logger)
	return false
}
