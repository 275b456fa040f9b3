// Package delivery defines the contract every transport entry point of the
// service implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running entry point (HTTP server, scheduler) started by
// the composition root. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
