package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
)

const (
	GoogleBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

	// placeholderKey is the value shipped in sample env files; it counts as unset.
	placeholderKey = "SUA_CHAVE_AQUI"
)

// Google resolves addresses with the Google Geocoding API, biased to Brazil.
type Google struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewGoogle creates a Google geocoding provider. An empty baseURL selects the
// public endpoint.
func NewGoogle(apiKey, baseURL string, timeout time.Duration, log zerolog.Logger) *Google {
	if baseURL == "" {
		baseURL = GoogleBaseURL
	}
	return &Google{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("provider", "google").Logger(),
	}
}

// Name identifies the provider in logs and metrics.
func (g *Google) Name() string { return "google" }

// Available reports whether a real API key is configured.
func (g *Google) Available() bool {
	return g.apiKey != "" && g.apiKey != placeholderKey
}

// Resolve geocodes the full address, biased to Brazil. ZERO_RESULTS and an
// empty result list both map to ErrNoResults.
func (g *Google) Resolve(ctx context.Context, address string) (domain.Coordinates, error) {
	if !g.Available() {
		return domain.Coordinates{}, domain.ErrProviderUnavailable
	}

	params := url.Values{
		"address": {address},
		"region":  {"br"},
		"key":     {g.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("google geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Coordinates{}, fmt.Errorf("%w: google status %d: %s", domain.ErrUnexpectedResponse, resp.StatusCode, body)
	}

	var gr googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: decode: %v", domain.ErrUnexpectedResponse, err)
	}

	switch {
	case gr.Status == "ZERO_RESULTS":
		return domain.Coordinates{}, domain.ErrNoResults
	case gr.Status != "OK":
		return domain.Coordinates{}, fmt.Errorf("%w: google status %s %s", domain.ErrUnexpectedResponse, gr.Status, gr.ErrorMessage)
	case len(gr.Results) == 0:
		return domain.Coordinates{}, domain.ErrNoResults
	}

	res := gr.Results[0]
	g.log.Debug().Str("formatted_address", res.FormattedAddress).Msg("google match")

	return domain.Coordinates{Lat: res.Geometry.Location.Lat, Lng: res.Geometry.Location.Lng}, nil
}

// Google Geocoding API response types.

type googleResponse struct {
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
	Results      []googleResult `json:"results"`
}

type googleResult struct {
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}
