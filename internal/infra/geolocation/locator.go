// Package geolocation resolves where the backpack is. Without real hardware
// the position comes from configuration, which can also simulate a user who
// denied access or a device without location support.
package geolocation

import (
	"context"
	"strings"

	"smartpack/config"
	"smartpack/internal/domain/service"
	"smartpack/internal/errors"

	"github.com/paulmach/orb"
)

// Location modes
const (
	ModeFixed       = "fixed"
	ModeDenied      = "denied"
	ModeUnsupported = "unsupported"
)

//nolint:gochecknoglobals
var world = orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}}

type staticLocator struct {
	mode  string
	point orb.Point
}

// NewStaticLocator creates a locator answering with point, or with the error
// mode describes.
func NewStaticLocator(mode string, point orb.Point) (service.Locator, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))

	switch mode {
	case ModeFixed:
		if !world.Contains(point) {
			return nil, errors.Errorf("coordinates out of range: lat %v lon %v", point.Lat(), point.Lon())
		}
	case ModeDenied, ModeUnsupported:
	default:
		return nil, errors.Errorf("unknown geolocation mode: %s", mode)
	}

	return &staticLocator{mode: mode, point: point}, nil
}

// NewLocator creates the locator from configuration
func NewLocator(cfg *config.Config) (service.Locator, error) {
	geo := cfg.Geolocation

	return NewStaticLocator(geo.Mode, orb.Point{geo.Longitude, geo.Latitude})
}

func (l *staticLocator) Locate(ctx context.Context) (orb.Point, error) {
	if err := ctx.Err(); err != nil {
		return orb.Point{}, errors.WithStack(err)
	}

	switch l.mode {
	case ModeDenied:
		return orb.Point{}, errors.WithStack(service.ErrLocationDenied)
	case ModeUnsupported:
		return orb.Point{}, errors.WithStack(service.ErrLocationUnsupported)
	default:
		return l.point, nil
	}
}
