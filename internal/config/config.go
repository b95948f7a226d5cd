package config

import (
	"cmp"
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "http://127.0.0.1:8000"
	defaultTimeout = 15 * time.Second
)

type Config struct {
	BaseURL string
	Debug   bool
	Timeout time.Duration
}

// Read overlays environment variables on top of the values coming from
// the command line flags. Flag values win over the defaults, env vars
// win over both.
func Read(baseURL string, debug bool, timeout time.Duration) (*Config, error) {
	baseURL = cmp.Or(os.Getenv("STOREFRONT_API_URL"), baseURL, defaultBaseURL)
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if v := os.Getenv("STOREFRONT_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		timeout = d
	}
	if v := os.Getenv("STOREFRONT_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		debug = b
	}
	return &Config{
		BaseURL: baseURL,
		Debug:   debug,
		Timeout: timeout,
	}, nil
}
