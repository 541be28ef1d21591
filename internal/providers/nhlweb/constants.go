package nhlweb

import "time"

const (
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "Mozilla/5.0 (compatible; Scoreboard/1.0)"

	// maxBodyBytes bounds how much of a feed response is read into memory.
	maxBodyBytes = 2 << 20
)
