// Package pnlapi is the HTTP client for the live PnL dashboard API.
package pnlapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pnlsnap/internal/core"
	applog "pnlsnap/internal/log"
)

// Client fetches the live market PnL cache from the dashboard endpoint.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
	logger     *applog.Logger
}

func NewClient(url, token string, timeout time.Duration, logger *applog.Logger) *Client {
	return &Client{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.WithComponent(applog.ComponentFetcher),
	}
}

// FetchSnapshot issues one GET against the configured endpoint and
// returns the parsed document. Connection errors, non-2xx statuses and
// undecodable bodies all come back as errors; nothing panics past this
// boundary.
func (c *Client) FetchSnapshot(ctx context.Context) (*core.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query PnL API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Include a bounded slice of the body; error pages can be huge.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("PnL API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var doc core.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode PnL response: %w", err)
	}

	c.logger.Debug("Fetched PnL snapshot",
		applog.FieldStatusCode, resp.StatusCode,
		applog.FieldRecordCount, len(doc.Results))

	return &doc, nil
}
