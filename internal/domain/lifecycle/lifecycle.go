// Package lifecycle holds shared start/stop constants for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds component start and graceful-shutdown operations.
const DefaultTimeout = 30 * time.Second
