package domain

import "strings"

// Upstream game-state codes as reported by the NHL web API.
const (
	StatePre          = "PRE"
	StateFuture       = "FUT"
	StateLive         = "LIVE"
	StateCritical     = "CRIT"
	StateFinal        = "FINAL"
	StateOfficialOver = "OFF"
)

// IsPreGame reports whether the state code means the game has not started.
func IsPreGame(state string) bool {
	return strings.EqualFold(state, StatePre) || strings.EqualFold(state, StateFuture)
}

// IsLive reports whether the state code means play is in progress.
func IsLive(state string) bool {
	return strings.EqualFold(state, StateLive) || strings.EqualFold(state, StateCritical)
}

// IsFinal reports whether the state code means the game is over.
func IsFinal(state string) bool {
	return strings.EqualFold(state, StateFinal) || strings.EqualFold(state, StateOfficialOver)
}
