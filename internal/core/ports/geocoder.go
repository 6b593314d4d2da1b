package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// GeocodeProvider resolves a query string to coordinates using one vendor.
type GeocodeProvider interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Available reports whether the provider is configured. Unavailable
	// providers are skipped without being called.
	Available() bool
	Resolve(ctx context.Context, query string) (domain.Coordinates, error)
}

// Geocoder turns a free-form address into coordinates. It never fails: the
// boolean is false when no coordinates could be found.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, bool)
}
