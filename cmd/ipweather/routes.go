package main

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes(api huma.API) {
	// Health check endpoint
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Summary:     "Ping health check",
		Description: "Check if the API is running",
		Tags:        []string{"health"},
	}, app.handlePing)

	huma.Register(api, huma.Operation{
		OperationID: "get-forecast",
		Method:      http.MethodGet,
		Path:        "/forecast",
		Summary:     "Get forecast entries",
		Description: "Decoded 3-hour forecast entries starting at the current bucket. Without coordinates the server's IP location is used.",
		Tags:        []string{"forecast"},
	}, app.handleGetForecast)
}
