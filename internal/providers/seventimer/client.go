package seventimer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: http://www.7timer.info/doc.php?lang=en
// Sample request: https://www.7timer.info/bin/civil.php?lon=-106.8175&lat=39.1911&product=civil&ac=0&unit=british&output=json&tzshift=0
const (
	baseURL = "https://www.7timer.info/bin/civil.php"
)

// Output formats of the civil product
const (
	OutputJSON     = "json"
	OutputInternal = "internal" // rendered forecast image for humans
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a 7Timer! client. An empty base selects the public
// endpoint and a nil httpClient selects a client without timeout.
func NewClient(base string, httpClient *http.Client, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		logger:     logger.With("component", "seventimer-client"),
	}
}

// GetForecast fetches the civil forecast for the given coordinates in imperial
// units with the time zone left at UTC
func (c *Client) GetForecast(latitude, longitude string) (*ForecastAPIResponse, error) {
	u, err := c.civilURL(latitude, longitude, OutputJSON)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("fetching 7timer forecast",
		"latitude", latitude,
		"longitude", longitude,
		"url", u,
	)

	resp, err := c.httpClient.Get(u)
	if err != nil {
		c.logger.Error("failed to fetch 7timer forecast", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("7timer API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode 7timer response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched 7timer forecast",
		"init", apiResp.Init,
		"points", len(apiResp.Dataseries),
	)

	return &apiResp, nil
}

// ViewerURL returns the human-viewable version of the forecast query. The URL
// is only built, never fetched.
func (c *Client) ViewerURL(latitude, longitude string) string {
	u, err := c.civilURL(latitude, longitude, OutputInternal)
	if err != nil {
		return ""
	}
	return u
}

func (c *Client) civilURL(latitude, longitude, output string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lon", longitude)
	q.Set("lat", latitude)
	q.Set("product", "civil")
	q.Set("ac", "0")
	q.Set("unit", "british")
	q.Set("output", output)
	q.Set("tzshift", "0")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
