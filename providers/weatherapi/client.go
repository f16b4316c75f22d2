package weatherapi

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weather-report/datasource"
	"weather-report/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the WeatherAPI.com v1 endpoint root
	DefaultBaseURL = "https://api.weatherapi.com/v1"

	// The free tier is limited to 3 days
	defaultDays = 3

	tracerName = "weather-report/providers/weatherapi"
)

// Client fetches forecast reports from WeatherAPI.com
type Client struct {
	apiKey  string
	baseURL string
	days    int
	client  *http.Client
	tracer  trace.Tracer
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTracer replaces the globally registered tracer
func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// WithDays sets how many forecast days are requested (1-3)
func WithDays(days int) Option {
	return func(c *Client) {
		if days >= 1 && days <= defaultDays {
			c.days = days
		}
	}
}

// Ensure Client implements datasource.ReportSource
var _ datasource.ReportSource = (*Client)(nil)

// NewClient creates a new WeatherAPI client
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		days:    defaultDays,
		client:  http.DefaultClient,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the provider name
func (c *Client) Name() string {
	return "WeatherAPI"
}

// FetchReport gets current conditions, air quality and the daily forecast for a location
func (c *Client) FetchReport(ctx context.Context, location string) (models.Report, error) {
	ctx, span := c.tracer.Start(ctx, "GET-FORECAST")
	defer span.End()
	span.SetAttributes(
		attribute.String("weather.location", location),
		attribute.Int("weather.days", c.days),
	)

	report, err := c.fetch(ctx, span, location)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return models.Report{}, err
	}
	return report, nil
}

func (c *Client) fetch(ctx context.Context, span trace.Span, location string) (models.Report, error) {
	endpoint := c.baseURL + "/forecast.json"
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("q", location)
	params.Add("days", strconv.Itoa(c.days))
	params.Add("aqi", "yes")
	apiURL := endpoint + "?" + params.Encode()

	log.Printf("Making WeatherAPI forecast request to: %s", redactKey(apiURL, c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Report{}, fmt.Errorf("%w: %s", datasource.ErrFetch, redactKey(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Report{}, fmt.Errorf("%w: failed to read response body: %v", datasource.ErrFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		return models.Report{}, parseAPIError(resp.StatusCode, resp.Status, rawData)
	}

	return parseReport(rawData)
}

// redactKey hides the API key from anything that gets printed
func redactKey(s, key string) string {
	if key == "" {
		return s
	}
	s = strings.ReplaceAll(s, url.QueryEscape(key), "REDACTED")
	return strings.ReplaceAll(s, key, "REDACTED")
}
