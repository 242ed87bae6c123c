package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"ipweather/internal/console"
	"ipweather/internal/viewer"
	"ipweather/internal/weather"
)

// RunForecast resolves the location, fetches its forecast and prints count
// entries to out. The closing prompt reads from in.
func (app *App) RunForecast(out io.Writer, in io.Reader, count int, chartPath string) error {
	coords, err := app.locationService.Resolve()
	if err != nil {
		return err
	}

	forecast, err := app.weatherService.GetForecast(coords)
	if err != nil {
		return err
	}

	now, err := app.now(coords)
	if err != nil {
		return err
	}

	slots := weather.Select(forecast, now, count)
	if len(slots) < count {
		app.logger.Debug("forecast truncated",
			"requested", count,
			"available", len(slots),
			"start_index", weather.StartIndex(forecast.Init, now),
		)
	}

	if err := console.New(out, app.cfg.App.ConsoleWidth).Render(coords.Label, slots); err != nil {
		return err
	}

	if chartPath != "" {
		if err := app.writeChart(chartPath, forecast, now); err != nil {
			return err
		}
	}

	if !app.cfg.App.Prompt {
		return nil
	}

	opened, err := viewer.Prompt(in, out, forecast.ViewerURL, app.opener)
	if err != nil {
		app.logger.Warn("viewer prompt failed", "error", err)
		return nil
	}
	if opened {
		app.logger.Debug("opened forecast viewer", "url", forecast.ViewerURL)
	}
	return nil
}

func (app *App) writeChart(path string, forecast *weather.Forecast, now time.Time) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close chart file: %w", closeErr)
		}
	}()

	if err := console.WriteTemperatureChart(f, forecast, now); err != nil {
		return err
	}

	app.logger.Info("wrote temperature chart", "path", path)
	return nil
}
