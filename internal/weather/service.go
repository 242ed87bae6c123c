package weather

import (
	"errors"
	"fmt"
	"log/slog"

	"ipweather/internal/providers/seventimer"
	"ipweather/internal/types"
)

// ErrInvalidInitTime is returned when the forecast init timestamp is not YYYYMMDDHH
var ErrInvalidInitTime = errors.New("invalid init time")

type ForecastProvider interface {
	// GetForecast fetches the civil forecast for the given decimal coordinates
	GetForecast(latitude, longitude string) (*seventimer.ForecastAPIResponse, error)
	// ViewerURL builds the human-viewable link for the same query
	ViewerURL(latitude, longitude string) string
}

type Service interface {
	GetForecast(coords types.Coordinates) (*Forecast, error)
}

type weatherService struct {
	forecastProvider ForecastProvider
	logger           *slog.Logger
}

func NewWeatherService(client *seventimer.Client, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(client, logger)
}

func NewWeatherServiceWithProvider(forecastProvider ForecastProvider, logger *slog.Logger) Service {
	return &weatherService{
		forecastProvider: forecastProvider,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetForecast(coords types.Coordinates) (*Forecast, error) {
	s.logger.Info("getting weather data",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	apiResponse, err := s.forecastProvider.GetForecast(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Error("failed to get forecast from provider", "error", err)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	forecast, err := mapForecastAPIResponseToForecast(coords, apiResponse)
	if err != nil {
		s.logger.Error("failed to map forecast", "error", err)
		return nil, err
	}
	forecast.ViewerURL = s.forecastProvider.ViewerURL(coords.Latitude, coords.Longitude)

	s.logger.Debug("mapped forecast",
		"init", forecast.Init,
		"entries", len(forecast.Entries),
	)

	return forecast, nil
}

func mapForecastAPIResponseToForecast(coords types.Coordinates, apiResponse *seventimer.ForecastAPIResponse) (*Forecast, error) {
	if apiResponse == nil {
		return nil, fmt.Errorf("forecast response is nil")
	}

	init, err := ParseInitTime(apiResponse.Init)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(apiResponse.Dataseries))
	for _, p := range apiResponse.Dataseries {
		entries = append(entries, Entry{
			Timepoint:        p.Timepoint,
			CloudCover:       p.Cloudcover,
			LiftedIndex:      p.LiftedIndex,
			PrecType:         p.PrecType,
			PrecAmount:       p.PrecAmount,
			Temperature:      p.Temp2m,
			RelativeHumidity: p.Rh2m,
			Wind: Wind{
				Speed:     p.Wind10m.Speed,
				Direction: p.Wind10m.Direction,
			},
			Weather: p.Weather,
		})
	}

	return &Forecast{
		Location: coords,
		Product:  apiResponse.Product,
		Init:     init,
		Entries:  entries,
	}, nil
}
