package ingest

import "time"

// Status describes the recent health of a poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	Paused              bool
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly. A paused poller stays ready on the strength of its last
// fetch.
func (s Status) IsReady() bool {
	if s.Paused {
		return true
	}
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// SelectionSource reports the currently selected game, zero when none.
type SelectionSource interface {
	SelectedGameID() int64
}
