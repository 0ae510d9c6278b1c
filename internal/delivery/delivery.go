// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server) started by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
