package server

import "time"

const (
	readTimeout  = 10 * time.Second
	// writeTimeout outlasts the default upstream timeout so slow upstreams still get a 502.
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
