package domain

import "errors"

// Geocoding provider failures. Transport errors are wrapped on top of these.
var (
	ErrProviderUnavailable = errors.New("geocoding provider not configured")
	ErrNoResults           = errors.New("geocoding returned no results")
	ErrOutOfBounds         = errors.New("geocoding result out of bounds")
	ErrUnexpectedResponse  = errors.New("unexpected geocoding response")
)
