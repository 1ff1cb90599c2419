// Package lifecycle holds shared timeouts for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as pinging the
// database or draining the HTTP server.
const DefaultTimeout = 15 * time.Second
