package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"weather-report/config"
	"weather-report/datasource"
	"weather-report/input"
	"weather-report/providers/weatherapi"
	"weather-report/render"
	"weather-report/tracing"
)

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	// Load environment variables from .env file
	config.LoadDotEnv(".env")

	os.Exit(run(context.Background(), os.Args[1:], input.NewStdinResolver(), os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, resolver *input.Resolver, stdout, stderr io.Writer) int {
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		return fail(stderr, err)
	}
	if cfg.Debug {
		log.SetOutput(stderr)
	}

	location, err := resolver.Resolve(args)
	if err != nil {
		return fail(stderr, err)
	}

	shutdown, err := tracing.Setup(cfg.ZipkinEndpoint)
	if err != nil {
		// tracing is diagnostics only
		log.Printf("Warning: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Warning: failed to flush traces: %v", err)
			}
		}()
	}

	source := newSource(cfg)

	log.Printf("Fetching report for %q from %s", location, source.Name())
	report, err := source.FetchReport(ctx, location)
	if err != nil {
		return fail(stderr, err)
	}

	if err := render.Write(stdout, report); err != nil {
		return fail(stderr, err)
	}
	return exitOK
}

// newSource builds the rate limited WeatherAPI client. One invocation needs a
// single token, so the burst defaults to 1.
func newSource(cfg *config.Config) datasource.ReportSource {
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	client := weatherapi.NewClient(cfg.APIKey, weatherapi.WithBaseURL(cfg.BaseURL))
	return datasource.NewRateLimitedSource(client, cfg.RateLimitRPS, burst)
}

// fail prints a stable one-line message and picks the exit code
func fail(stderr io.Writer, err error) int {
	if errors.Is(err, config.ErrCredentialMissing) {
		fmt.Fprintln(stderr, config.ErrCredentialMissing.Error())
		return exitError
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, input.ErrTooManyArgs) {
		return exitUsage
	}
	return exitError
}
