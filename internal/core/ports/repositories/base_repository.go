package repositories

import "context"

// Pinger is implemented by storage backends that can report liveness.
type Pinger interface {
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
}
