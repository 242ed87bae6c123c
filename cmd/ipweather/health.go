package main

import (
	"context"
)

// Upstreams lists the services a forecast request depends on
type Upstreams struct {
	Geolocation string `json:"geolocation" example:"https://ipinfo.io/json" doc:"IP geolocation endpoint"`
	Forecast    string `json:"forecast" example:"https://www.7timer.info/bin/civil.php" doc:"7Timer! civil endpoint"`
}

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message   string    `json:"message" example:"pong" doc:"Response message"`
		Upstreams Upstreams `json:"upstreams" doc:"Configured upstream endpoints, not probed"`
	}
}

// handlePing returns pong along with the upstreams the server is configured for
func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.Upstreams = Upstreams{
		Geolocation: app.cfg.Providers.GeolocationURL,
		Forecast:    app.cfg.Providers.ForecastURL,
	}
	return resp, nil
}
