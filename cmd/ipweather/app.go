package main

import (
	"fmt"
	"log/slog"
	"time"

	"ipweather/internal/config"
	"ipweather/internal/location"
	"ipweather/internal/providers/ipinfo"
	"ipweather/internal/providers/seventimer"
	"ipweather/internal/timezone"
	"ipweather/internal/types"
	"ipweather/internal/viewer"
	"ipweather/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	locationService location.Service
	weatherService  weather.Service
	timezoneService timezone.Service // nil unless aligning with the location's zone
	opener          viewer.Opener
	clock           func() time.Time
}

// NewApp creates a new application with real provider clients
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	httpClient := cfg.NewHTTPClient()

	app := &App{
		cfg:    cfg,
		logger: logger,
		locationService: location.NewLocationService(
			ipinfo.NewClient(cfg.Providers.GeolocationURL, httpClient, logger), logger),
		weatherService: weather.NewWeatherService(
			seventimer.NewClient(cfg.Providers.ForecastURL, httpClient, logger), logger),
		opener: viewer.BrowserOpener{},
		clock:  time.Now,
	}

	if cfg.App.TimeSource == config.TimeSourceLocation {
		tzSvc, err := timezone.NewService()
		if err != nil {
			return nil, fmt.Errorf("failed to create timezone service: %w", err)
		}
		app.timezoneService = tzSvc
	}

	logger.Debug("application initialized", "time_source", cfg.App.TimeSource)

	return app, nil
}

// now returns the clock the forecast is aligned with: the host's local time,
// or the current time in the coordinates' own zone
func (app *App) now(coords types.Coordinates) (time.Time, error) {
	now := app.clock()
	if app.timezoneService == nil {
		return now, nil
	}

	lat, lon, err := coords.Float()
	if err != nil {
		return time.Time{}, err
	}
	localNow, err := timezone.Now(app.timezoneService, lat, lon, now)
	if err != nil {
		app.logger.Error("failed to determine timezone",
			"latitude", lat,
			"longitude", lon,
			"error", err,
		)
		return time.Time{}, fmt.Errorf("failed to determine timezone: %w", err)
	}
	return localNow, nil
}
