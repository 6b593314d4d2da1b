package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
	"github.com/venha/invitations-api/internal/pkg/metrics"
)

// logAddressLen caps how much of an address is written to logs.
const logAddressLen = 60

// GeocodeStrategy pairs a provider with the query it expects.
type GeocodeStrategy struct {
	Provider ports.GeocodeProvider
	// Prepare turns the raw address into the provider's query. It reports
	// false when the address lacks what the provider needs, in which case the
	// provider is not called. Nil means the raw address is sent as is.
	Prepare func(address string) (string, bool)
}

// AddressGeocoder tries each strategy in order and returns the first valid
// coordinate. Failures are logged and never returned to the caller.
type AddressGeocoder struct {
	strategies []GeocodeStrategy
	log        zerolog.Logger
}

// NewAddressGeocoder returns a Geocoder trying strategies in the given order.
func NewAddressGeocoder(log zerolog.Logger, strategies ...GeocodeStrategy) *AddressGeocoder {
	return &AddressGeocoder{strategies: strategies, log: log}
}

// Geocode resolves address to coordinates. It reports false when the address
// is empty or no strategy produced an in-bounds result.
func (g *AddressGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, bool) {
	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, false
	}

	for i, s := range g.strategies {
		name := s.Provider.Name()
		last := i == len(g.strategies)-1

		if !s.Provider.Available() {
			g.log.Info().Str("provider", name).Msg("geocoding provider not configured, skipping")
			metrics.GeocodeRequestsTotal.WithLabelValues(name, metrics.ResultSkipped).Inc()
			continue
		}

		query := address
		if s.Prepare != nil {
			q, ok := s.Prepare(address)
			if !ok {
				g.log.Warn().
					Str("provider", name).
					Str("address", truncate(address, logAddressLen)).
					Msg("could not extract street or city from address")
				metrics.GeocodeRequestsTotal.WithLabelValues(name, metrics.ResultSkipped).Inc()
				continue
			}
			query = q
		}

		coords, err := s.Provider.Resolve(ctx, query)
		if err == nil && !coords.Valid() {
			err = fmt.Errorf("%w: lat=%f lng=%f", domain.ErrOutOfBounds, coords.Lat, coords.Lng)
		}
		if err != nil {
			metrics.GeocodeRequestsTotal.WithLabelValues(name, metrics.ResultFailure).Inc()
			evt := g.log.Warn()
			if last {
				evt = g.log.Error()
			}
			evt.Err(err).
				Str("provider", name).
				Str("query", truncate(query, logAddressLen)).
				Bool("fallback", !last).
				Msg("geocoding failed")
			continue
		}

		metrics.GeocodeRequestsTotal.WithLabelValues(name, metrics.ResultSuccess).Inc()
		g.log.Info().
			Str("provider", name).
			Float64("lat", coords.Lat).
			Float64("lng", coords.Lng).
			Msg("address geocoded")
		return coords, true
	}

	g.log.Error().Str("address", truncate(address, logAddressLen)).Msg("no coordinates found for address")
	return domain.Coordinates{}, false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
