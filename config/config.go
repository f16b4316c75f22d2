package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names read by the tool
const (
	EnvAPIKey         = "WEATHER_API_KEY"
	EnvBaseURL        = "WEATHER_API_BASE_URL"
	EnvZipkinEndpoint = "WEATHER_ZIPKIN_ENDPOINT"
	EnvRateLimitRPS   = "WEATHER_RATE_LIMIT_RPS"
	EnvRateLimitBurst = "WEATHER_RATE_LIMIT_BURST"
	EnvDebug          = "WEATHER_DEBUG"
)

// FallbackAPIKey is compiled in with
// -ldflags "-X weather-report/config.FallbackAPIKey=<key>"; empty by default.
var FallbackAPIKey = ""

// ErrCredentialMissing is returned when neither the environment nor the fallback provide a key
var ErrCredentialMissing = errors.New("no API key found: set " + EnvAPIKey + " or add it to .env")

// Config represents the application configuration
type Config struct {
	APIKey         string
	BaseURL        string // empty means the provider default
	ZipkinEndpoint string // empty disables trace export
	RateLimitRPS   float64
	RateLimitBurst int
	Debug          bool
}

// LoadDotEnv loads variables from a .env file if there is one. Variables
// already present in the environment are not overridden.
func LoadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("Warning: Error loading %s file: %v", path, err)
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// ResolveAPIKey returns the environment key if set, else the fallback
func ResolveAPIKey(fallback string) (string, error) {
	return resolveAPIKey(newViper(), fallback)
}

func resolveAPIKey(v *viper.Viper, fallback string) (string, error) {
	if key := v.GetString(EnvAPIKey); key != "" {
		return key, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", ErrCredentialMissing
}

// Load resolves the API key and reads the optional settings
func Load() (*Config, error) {
	v := newViper()

	key, err := resolveAPIKey(v, FallbackAPIKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		APIKey:         key,
		BaseURL:        strings.TrimSpace(v.GetString(EnvBaseURL)),
		ZipkinEndpoint: strings.TrimSpace(v.GetString(EnvZipkinEndpoint)),
		RateLimitRPS:   v.GetFloat64(EnvRateLimitRPS),
		RateLimitBurst: v.GetInt(EnvRateLimitBurst),
		Debug:          v.GetBool(EnvDebug),
	}, nil
}
