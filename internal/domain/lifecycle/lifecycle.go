// Package lifecycle holds shared start/stop timing for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds database pings, migrations and server shutdown.
const DefaultTimeout = 15 * time.Second
