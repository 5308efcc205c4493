// Package meteo implements domain.WeatherSource against the Open-Meteo APIs.
// Historical dates route to the archive endpoint (amount shape); future dates
// inside the forecast horizon route to the forecast endpoint (probability
// shape), switching to the broader seamless model past the high-resolution
// window. All calls go through a circuit breaker so a provider outage fails
// fast instead of stalling every game in the slate.
package meteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sony/gobreaker/v2"

	"github.com/couchcryptid/gameday-weather/internal/domain"
	"github.com/couchcryptid/gameday-weather/internal/observability"
)

const (
	defaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultArchiveBaseURL  = "https://archive-api.open-meteo.com/v1/archive"

	// highResForecastDays is the near-term window served by the default
	// high-resolution model blend; beyond it the broader global model is
	// requested explicitly.
	highResForecastDays = 7
	broadModel          = "gfs_seamless"
)

// ErrHorizonExceeded is returned for dates beyond the provider's forecast
// horizon. The engine's freshness gate normally prevents such requests; this
// is the backstop.
var ErrHorizonExceeded = errors.New("date beyond forecast horizon")

// Client implements domain.WeatherSource using Open-Meteo.
type Client struct {
	httpClient      *http.Client
	breaker         *gobreaker.CircuitBreaker[*http.Response]
	forecastBaseURL string
	archiveBaseURL  string
	clock           clockwork.Clock
	metrics         *observability.Metrics
	logger          *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		httpClient:      &http.Client{Timeout: timeout},
		breaker:         breaker,
		forecastBaseURL: defaultForecastBaseURL,
		archiveBaseURL:  defaultArchiveBaseURL,
		clock:           clockwork.NewRealClock(),
		metrics:         metrics,
		logger:          logger,
	}
}

// HourlyWeather fetches one venue-local day of hourly weather for the given
// coordinates, choosing the archive or forecast endpoint by date.
func (c *Client) HourlyWeather(ctx context.Context, lat, lon float64, date time.Time) (domain.ProviderHours, error) {
	fullURL, shape, err := c.routeRequest(lat, lon, date)
	if err != nil {
		return domain.ProviderHours{}, err
	}

	start := time.Now()
	raw, err := c.doRequest(ctx, fullURL, shape)
	c.metrics.ProviderRequestDuration.WithLabelValues(string(shape)).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(string(shape), "error").Inc()
		c.logger.Warn("weather request failed",
			"shape", string(shape),
			"date", date.Format("2006-01-02"),
			"error", err)
		return domain.ProviderHours{}, err
	}

	c.metrics.ProviderRequests.WithLabelValues(string(shape), "success").Inc()
	return raw, nil
}

// routeRequest picks the endpoint, hourly variable set, and model for the
// requested date. Archive responses never include relative humidity, which is
// why the amount shape leaves the humidity array empty downstream.
func (c *Client) routeRequest(lat, lon float64, date time.Time) (string, domain.PrecipShape, error) {
	dateStr := date.Format("2006-01-02")
	days := c.daysAhead(date)

	params := url.Values{
		"latitude":           {fmt.Sprintf("%.4f", lat)},
		"longitude":          {fmt.Sprintf("%.4f", lon)},
		"temperature_unit":   {"fahrenheit"},
		"wind_speed_unit":    {"mph"},
		"precipitation_unit": {"inch"},
		"timezone":           {"auto"},
		"start_date":         {dateStr},
		"end_date":           {dateStr},
	}

	switch {
	case days < 0:
		params.Set("hourly", "temperature_2m,precipitation,wind_speed_10m,wind_direction_10m,weather_code")
		return c.archiveBaseURL + "?" + params.Encode(), domain.ShapeAmount, nil
	case days <= highResForecastDays:
		params.Set("hourly", "temperature_2m,relative_humidity_2m,precipitation_probability,wind_speed_10m,wind_direction_10m,weather_code")
		return c.forecastBaseURL + "?" + params.Encode(), domain.ShapeProbability, nil
	case days <= domain.ForecastHorizonDays:
		params.Set("hourly", "temperature_2m,relative_humidity_2m,precipitation_probability,wind_speed_10m,wind_direction_10m,weather_code")
		params.Set("models", broadModel)
		return c.forecastBaseURL + "?" + params.Encode(), domain.ShapeProbability, nil
	default:
		return "", "", ErrHorizonExceeded
	}
}

// daysAhead counts calendar days from the clock's today to the given date.
func (c *Client) daysAhead(date time.Time) int {
	today := midnight(c.clock.Now())
	day := midnight(date)
	return int(day.Sub(today) / (24 * time.Hour))
}

func midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (c *Client) doRequest(ctx context.Context, fullURL string, want domain.PrecipShape) (domain.ProviderHours, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.ProviderHours{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		r, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if r.StatusCode >= http.StatusInternalServerError {
			body, _ := io.ReadAll(r.Body)
			r.Body.Close()
			return nil, fmt.Errorf("open-meteo server error: status %d: %s", r.StatusCode, body)
		}
		return r, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return domain.ProviderHours{}, fmt.Errorf("open-meteo circuit open: %w", err)
		}
		return domain.ProviderHours{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.ProviderHours{}, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var meteoResp response
	if err := json.NewDecoder(resp.Body).Decode(&meteoResp); err != nil {
		return domain.ProviderHours{}, fmt.Errorf("decode response: %w", err)
	}

	return mapResponse(meteoResp, want)
}

// mapResponse converts the decoded payload into domain.ProviderHours,
// detecting the shape by which precipitation array is actually present
// rather than trusting the endpoint that was called.
func mapResponse(resp response, want domain.PrecipShape) (domain.ProviderHours, error) {
	raw := domain.ProviderHours{
		TemperatureF:    resp.Hourly.Temperature2m,
		HumidityPct:     resp.Hourly.RelativeHumidity2m,
		WindSpeedMPH:    resp.Hourly.WindSpeed10m,
		WindFromBearing: resp.Hourly.WindDirection10m,
		WeatherCode:     resp.Hourly.WeatherCode,
	}

	switch {
	case resp.Hourly.PrecipitationProbability != nil:
		raw.Shape = domain.ShapeProbability
		raw.PrecipProbabilityPct = resp.Hourly.PrecipitationProbability
	case resp.Hourly.Precipitation != nil:
		raw.Shape = domain.ShapeAmount
		raw.PrecipAmountIn = resp.Hourly.Precipitation
	default:
		return domain.ProviderHours{}, fmt.Errorf("response carries neither precipitation shape (requested %s)", want)
	}

	return raw, nil
}

// Open-Meteo API response types. Arrays are parallel, indexed by hour of day.

type response struct {
	Hourly hourly `json:"hourly"`
}

type hourly struct {
	Time                     []string  `json:"time"`
	Temperature2m            []float64 `json:"temperature_2m"`
	RelativeHumidity2m       []float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	Precipitation            []float64 `json:"precipitation"`
	WeatherCode              []int     `json:"weather_code"`
	WindSpeed10m             []float64 `json:"wind_speed_10m"`
	WindDirection10m         []float64 `json:"wind_direction_10m"`
}
