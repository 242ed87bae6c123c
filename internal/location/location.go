package location

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"ipweather/internal/providers/ipinfo"
	"ipweather/internal/types"
)

// ErrMalformedLoc is returned when the geolocation response has no usable "lat,lon" pair
var ErrMalformedLoc = errors.New("malformed loc field")

// Service resolves the caller's approximate location
type Service interface {
	// Resolve geolocates the caller and returns coordinates with a display label
	Resolve() (types.Coordinates, error)
}

// GeolocationProvider defines the interface for IP geolocation providers
type GeolocationProvider interface {
	Lookup() (*ipinfo.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	provider GeolocationProvider
	logger   *slog.Logger
}

// NewLocationService creates a new location service backed by an ipinfo client
func NewLocationService(client *ipinfo.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(client, logger)
}

// NewLocationServiceWithProvider creates a new location service with a custom provider.
// This is useful for testing with mock providers.
func NewLocationServiceWithProvider(provider GeolocationProvider, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		logger:   logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve() (types.Coordinates, error) {
	s.logger.Info("getting coordinates")

	resp, err := s.provider.Lookup()
	if err != nil {
		s.logger.Error("failed to get location", "error", err)
		return types.Coordinates{}, fmt.Errorf("failed to get location: %w", err)
	}

	coords, err := translateLookup(resp)
	if err != nil {
		return types.Coordinates{}, err
	}

	s.logger.Debug("resolved coordinates",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"label", coords.Label,
	)

	return coords, nil
}

// translateLookup converts an ipinfo response to domain Coordinates
func translateLookup(resp *ipinfo.LookupAPIResponse) (types.Coordinates, error) {
	if resp == nil {
		return types.Coordinates{}, fmt.Errorf("lookup response is nil")
	}

	parts := strings.Split(resp.Loc, ",")
	if len(parts) != 2 {
		return types.Coordinates{}, fmt.Errorf("%w: %q", ErrMalformedLoc, resp.Loc)
	}
	lat := strings.TrimSpace(parts[0])
	lon := strings.TrimSpace(parts[1])
	if lat == "" || lon == "" {
		return types.Coordinates{}, fmt.Errorf("%w: %q", ErrMalformedLoc, resp.Loc)
	}

	return types.NewCoordinates(lat, lon, Label(resp.City, resp.Region, resp.Postal)), nil
}

// Label formats a location as "City, Region Postal"
func Label(city, region, postal string) string {
	return city + ", " + region + " " + postal
}
