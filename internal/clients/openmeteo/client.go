// Package openmeteo fetches the current weather shown next to the
// complaint form. Purely cosmetic; failures are meant to be swallowed.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"
)

const defaultBaseURL = "https://api.open-meteo.com"

// Default coordinates of the served municipality.
const (
	DefaultLatitude  = -22.5232
	DefaultLongitude = -44.1041
)

type Weather struct {
	Temperature float64 `json:"temperature"`
	Code        int     `json:"weathercode"`
	Description string  `json:"description"`
}

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
		log:     log.With(slog.String("component", "openmeteo_client")),
	}
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (Weather, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%v&longitude=%v&current_weather=true", c.baseURL, lat, lon)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Weather{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Weather{}, fmt.Errorf("open-meteo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Weather{}, fmt.Errorf("open-meteo status %d", resp.StatusCode)
	}

	var body struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Weather{}, fmt.Errorf("decode open-meteo response: %w", err)
	}
	if body.CurrentWeather == nil {
		return Weather{}, fmt.Errorf("open-meteo response has no current weather")
	}

	w := Weather{
		Temperature: body.CurrentWeather.Temperature,
		Code:        body.CurrentWeather.WeatherCode,
		Description: Describe(body.CurrentWeather.WeatherCode),
	}
	c.log.Debug("weather fetched", "temperature", w.Temperature, "code", w.Code)
	return w, nil
}

// Describe maps a WMO weather code to the widget's description text.
func Describe(code int) string {
	switch {
	case code == 0:
		return "Céu Limpo"
	case code >= 1 && code <= 3:
		return "Parcialmente Nublado"
	case code >= 45 && code <= 48:
		return "Nevoeiro"
	case code >= 51 && code <= 67:
		return "Chuva Fraca/Moderada"
	case code >= 80 && code <= 99:
		return "Chuva Forte / Tempestade"
	default:
		return "Clima Variável"
	}
}
