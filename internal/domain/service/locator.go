// Package service defines interfaces for external collaborators and stateless
// domain logic that don't naturally fit within a single entity.
package service

import (
	"context"

	"smartpack/internal/errors"

	"github.com/paulmach/orb"
)

var (
	// ErrLocationDenied is returned when the user refused location access.
	ErrLocationDenied = errors.New("location access denied")

	// ErrLocationUnsupported is returned when no location source exists.
	ErrLocationUnsupported = errors.New("geolocation not supported")
)

// Locator resolves the device position.
type Locator interface {
	// Locate returns the current position as lon/lat.
	Locate(ctx context.Context) (orb.Point, error)
}
