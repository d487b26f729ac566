// Package delivery defines the contract every transport surface satisfies
// so the application entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport surface (HTTP server, worker, ...).
type Delivery interface {
	// Serve blocks until the surface stops or the context is cancelled.
	Serve(ctx context.Context) error
}
