// Package lifecycle holds shared start/stop settings.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown of each component.
const DefaultTimeout = 10 * time.Second
