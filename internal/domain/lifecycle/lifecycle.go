// Package lifecycle holds process-wide lifecycle settings shared by deliveries and infra.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
