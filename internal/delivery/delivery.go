// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound transport (HTTP server, scheduler).
type Delivery interface {
	Serve(ctx context.Context) error
}
