// Package agify asks api.agify.io for an age estimate at registration
// time. The result becomes free-form account metadata and is never
// revalidated; an unreachable API becomes an error marker instead.
package agify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const defaultBaseURL = "https://api.agify.io"

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(log *slog.Logger) *Client {
	return NewWithBaseURL(defaultBaseURL, log)
}

func NewWithBaseURL(baseURL string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log.With(slog.String("component", "agify_client")),
	}
}

// EstimateAge builds registration metadata from the first name. It never
// returns an error: failure is recorded inside the metadata itself, the
// way the registration form did it.
func (c *Client) EstimateAge(ctx context.Context, name string) map[string]any {
	firstName := strings.SplitN(strings.TrimSpace(name), " ", 2)[0]

	age, err := c.fetch(ctx, firstName)
	if err != nil {
		c.log.Debug("age estimate unavailable", "name", firstName, "error", err)
		return map[string]any{"error": "API indisponível"}
	}
	if age == nil {
		return map[string]any{"estimatedAge": "Não estimado"}
	}
	return map[string]any{"estimatedAge": *age}
}

func (c *Client) fetch(ctx context.Context, firstName string) (*int, error) {
	u := fmt.Sprintf("%s?name=%s&country_id=BR", c.baseURL, url.QueryEscape(firstName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("agify request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agify status %d", resp.StatusCode)
	}

	var body struct {
		Age *int `json:"age"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode agify response: %w", err)
	}
	return body.Age, nil
}
