// Package lifecycle holds shared lifecycle constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks such as DB ping and server shutdown.
const DefaultTimeout = 10 * time.Second
