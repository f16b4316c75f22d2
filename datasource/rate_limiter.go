package datasource

import (
	"context"
	"fmt"

	"weather-report/models"

	"golang.org/x/time/rate"
)

// WeatherAPI free tier allows ~23 calls/minute = 0.4 calls per second
const (
	DefaultRPS   = 0.4
	DefaultBurst = 3
)

// RateLimitedSource wraps a ReportSource with rate limiting
type RateLimitedSource struct {
	source  ReportSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedSource creates a new rate limited report source
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedSource(source ReportSource, rps float64, burst int) *RateLimitedSource {
	if rps <= 0 {
		rps = DefaultRPS
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimitedSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchReport fetches a report, respecting rate limits
func (r *RateLimitedSource) FetchReport(ctx context.Context, location string) (models.Report, error) {
	// Wait for rate limiter permission or context cancellation
	if err := r.limiter.Wait(ctx); err != nil {
		return models.Report{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}

	return r.source.FetchReport(ctx, location)
}

// Name returns the source name
func (r *RateLimitedSource) Name() string {
	return r.name
}

var _ ReportSource = (*RateLimitedSource)(nil)
