// Package delivery holds the ways the outside world reaches the usecases.
package delivery

import (
	"context"
)

// Delivery is a long running entry point started by the application.
// Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
