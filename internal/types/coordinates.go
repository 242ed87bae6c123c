package types

import (
	"fmt"
	"strconv"
)

// Coordinates is a resolved location. Latitude and longitude are kept as the
// decimal strings the geolocation service returned so they reach the forecast
// query unchanged.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Label     string `json:"label"`
}

func NewCoordinates(latitude, longitude, label string) Coordinates {
	return Coordinates{
		Latitude:  latitude,
		Longitude: longitude,
		Label:     label,
	}
}

// Float parses the coordinates into decimal degrees
func (c Coordinates) Float() (latitude, longitude float64, err error) {
	latitude, err = strconv.ParseFloat(c.Latitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", c.Latitude, err)
	}
	longitude, err = strconv.ParseFloat(c.Longitude, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", c.Longitude, err)
	}
	return latitude, longitude, nil
}
