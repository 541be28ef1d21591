package main

import "testing"

// main must return immediately under SKIP_SERVER_RUN so `go test ./...`
// never binds the listen port or starts the display loop.
func TestMainHonorsSkipEnv(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}
