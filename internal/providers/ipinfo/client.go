package ipinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// API Docs: https://ipinfo.io/developers
// Sample request: https://ipinfo.io/json
const (
	baseURL = "https://ipinfo.io/json"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an ipinfo client. An empty url selects the public endpoint
// and a nil httpClient selects a client without timeout.
func NewClient(url string, httpClient *http.Client, logger *slog.Logger) *Client {
	if url == "" {
		url = baseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    url,
		logger:     logger.With("component", "ipinfo-client"),
	}
}

// Lookup geolocates the caller's public IP address
func (c *Client) Lookup() (*LookupAPIResponse, error) {
	c.logger.Debug("fetching ipinfo lookup", "url", c.baseURL)

	resp, err := c.httpClient.Get(c.baseURL)
	if err != nil {
		c.logger.Error("failed to fetch ipinfo lookup", "error", err)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("ipinfo API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp LookupAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode ipinfo response", "error", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched ipinfo lookup",
		"city", apiResp.City,
		"region", apiResp.Region,
	)

	return &apiResp, nil
}
