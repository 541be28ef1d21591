package server

import "time"

// Admin API timeouts. The websocket stream endpoint hijacks its connection
// before these apply, so long-lived frame streams are unaffected.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shrink the graceful-stop window.
var shutdownTimeout = 10 * time.Second
