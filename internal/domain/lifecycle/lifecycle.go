// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single lifecycle hook (ping, shutdown, drain).
const DefaultTimeout = 10 * time.Second
