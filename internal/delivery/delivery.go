// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a long-running server owned by the fx lifecycle. Serve blocks
// until the server stops; shutdown happens through fx OnStop hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
