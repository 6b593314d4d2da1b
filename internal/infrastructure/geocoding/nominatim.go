package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
)

const (
	NominatimBaseURL = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent = "VenhaApp/1.0"
)

// Nominatim resolves addresses with the OpenStreetMap search API. It needs no
// key but requires an identifying User-Agent.
type Nominatim struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewNominatim creates a Nominatim provider. Empty baseURL and userAgent fall
// back to NominatimBaseURL and DefaultUserAgent.
func NewNominatim(baseURL, userAgent string, timeout time.Duration, log zerolog.Logger) *Nominatim {
	if baseURL == "" {
		baseURL = NominatimBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Nominatim{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("provider", "nominatim").Logger(),
	}
}

// Name identifies the provider in logs and metrics.
func (n *Nominatim) Name() string { return "nominatim" }

// Available is always true; Nominatim needs no key.
func (n *Nominatim) Available() bool { return true }

// Resolve searches for query and returns the first hit.
func (n *Nominatim) Resolve(ctx context.Context, query string) (domain.Coordinates, error) {
	params := url.Values{
		"q":              {query},
		"format":         {"json"},
		"limit":          {"1"},
		"addressdetails": {"1"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Coordinates{}, fmt.Errorf("%w: nominatim status %d: %s", domain.ErrUnexpectedResponse, resp.StatusCode, body)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: decode: %v", domain.ErrUnexpectedResponse, err)
	}
	if len(places) == 0 {
		return domain.Coordinates{}, domain.ErrNoResults
	}

	// Nominatim encodes coordinates as strings.
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: lat %q", domain.ErrUnexpectedResponse, places[0].Lat)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: lon %q", domain.ErrUnexpectedResponse, places[0].Lon)
	}

	n.log.Debug().Str("display_name", places[0].DisplayName).Msg("nominatim match")
	return domain.Coordinates{Lat: lat, Lng: lng}, nil
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
