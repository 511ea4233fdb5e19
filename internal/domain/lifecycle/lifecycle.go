// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start/stop hook work such as pings and shutdowns.
const DefaultTimeout = 10 * time.Second
