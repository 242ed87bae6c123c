package main

import (
	"context"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"ipweather/internal/console"
	"ipweather/internal/types"
	"ipweather/internal/weather"
)

// GetForecastInput defines the query parameters for the forecast endpoint
type GetForecastInput struct {
	Count     int    `query:"count" default:"1" doc:"Number of 3-hour entries, values below 1 return one entry"`
	Latitude  string `query:"latitude" example:"39.1911" doc:"Latitude in decimal degrees"`
	Longitude string `query:"longitude" example:"-106.8175" doc:"Longitude in decimal degrees"`
}

// ForecastSlot is one decoded forecast entry
type ForecastSlot struct {
	Index     int       `json:"index" doc:"Position in the data series"`
	ValidAt   time.Time `json:"validAt"`
	Timestamp string    `json:"timestamp" example:"03 PM, Jun 01, 2024"`
	weather.DecodedEntry
}

// ForecastBody is the JSON body of the forecast endpoint
type ForecastBody struct {
	Location  types.Coordinates `json:"location"`
	Init      time.Time         `json:"init" doc:"Model initialization time (UTC)"`
	Now       time.Time         `json:"now" doc:"Clock the entries were aligned with"`
	ViewerURL string            `json:"viewerUrl" doc:"Graphical forecast for the same location"`
	Slots     []ForecastSlot    `json:"slots"`
}

type GetForecastOutput struct {
	Body ForecastBody
}

func (app *App) handleGetForecast(ctx context.Context, input *GetForecastInput) (*GetForecastOutput, error) {
	coords, err := app.requestCoordinates(input)
	if err != nil {
		return nil, err
	}

	forecast, err := app.weatherService.GetForecast(coords)
	if err != nil {
		app.logger.Error("failed to get forecast",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, huma.Error502BadGateway("failed to get forecast", err)
	}

	now, err := app.now(coords)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to determine local time", err)
	}

	slots := weather.Select(forecast, now, input.Count)

	body := ForecastBody{
		Location:  coords,
		Init:      forecast.Init,
		Now:       now,
		ViewerURL: forecast.ViewerURL,
		Slots:     make([]ForecastSlot, 0, len(slots)),
	}
	for _, slot := range slots {
		body.Slots = append(body.Slots, ForecastSlot{
			Index:        slot.Index,
			ValidAt:      slot.ValidAt,
			Timestamp:    slot.ValidAt.Format(console.TimestampLayout),
			DecodedEntry: slot.Entry,
		})
	}

	return &GetForecastOutput{Body: body}, nil
}

// requestCoordinates validates the query coordinates, falling back to the
// server's IP location when none are given
func (app *App) requestCoordinates(input *GetForecastInput) (types.Coordinates, error) {
	if input.Latitude == "" && input.Longitude == "" {
		coords, err := app.locationService.Resolve()
		if err != nil {
			return types.Coordinates{}, huma.Error502BadGateway("failed to resolve location", err)
		}
		return coords, nil
	}
	if input.Latitude == "" || input.Longitude == "" {
		return types.Coordinates{}, huma.Error400BadRequest("latitude and longitude must be given together")
	}

	lat, err := strconv.ParseFloat(input.Latitude, 64)
	if err != nil || lat < -90 || lat > 90 {
		return types.Coordinates{}, huma.Error400BadRequest("latitude must be a number between -90 and 90")
	}
	lon, err := strconv.ParseFloat(input.Longitude, 64)
	if err != nil || lon < -180 || lon > 180 {
		return types.Coordinates{}, huma.Error400BadRequest("longitude must be a number between -180 and 180")
	}

	return types.NewCoordinates(input.Latitude, input.Longitude, input.Latitude+","+input.Longitude), nil
}
