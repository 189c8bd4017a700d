package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL        = "https://hacker-news.firebaseio.com/v0"
	defaultWebBaseURL        = "https://news.ycombinator.com"
	defaultPageSize          = 10
	defaultRequestsPerSecond = 10.0
	defaultRequestTimeout    = 10 * time.Second
	defaultLogPath           = "hn.log"
	defaultLogLevel          = "info"
)

// Config holds runtime settings for the CLI app.
type Config struct {
	APIBaseURL        string
	WebBaseURL        string
	PageSize          int
	RequestsPerSecond float64
	RequestTimeout    time.Duration
	DownloadDir       string
	LogPath           string
	LogLevel          string
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL:  os.Getenv("HN_API_BASE_URL"),
		WebBaseURL:  os.Getenv("HN_WEB_BASE_URL"),
		DownloadDir: os.Getenv("HN_DOWNLOAD_DIR"),
		LogPath:     os.Getenv("HN_LOG_PATH"),
		LogLevel:    strings.ToLower(os.Getenv("HN_LOG_LEVEL")),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.WebBaseURL == "" {
		cfg.WebBaseURL = defaultWebBaseURL
	}
	if cfg.DownloadDir == "" {
		cfg.DownloadDir = "."
	}
	if cfg.LogPath == "" {
		cfg.LogPath = defaultLogPath
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	var err error
	if cfg.PageSize, err = intFromEnv("HN_PAGE_SIZE", defaultPageSize); err != nil {
		return Config{}, err
	}
	if cfg.RequestsPerSecond, err = floatFromEnv("HN_REQUESTS_PER_SECOND", defaultRequestsPerSecond); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationFromEnv("HN_REQUEST_TIMEOUT", defaultRequestTimeout); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if err := requireHTTPS("APIBaseURL", c.APIBaseURL); err != nil {
		return err
	}
	if c.WebBaseURL == "" {
		return errors.New("WebBaseURL is required")
	}
	if c.WebBaseURL[len(c.WebBaseURL)-1] == '/' {
		return fmt.Errorf("WebBaseURL must not end with '/': %s", c.WebBaseURL)
	}
	if err := requireHTTPS("WebBaseURL", c.WebBaseURL); err != nil {
		return err
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		return fmt.Errorf("PageSize must be between 1 and 100: %d", c.PageSize)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("RequestsPerSecond must be positive: %v", c.RequestsPerSecond)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("RequestTimeout must be positive: %s", c.RequestTimeout)
	}
	if c.DownloadDir == "" {
		return errors.New("DownloadDir is required")
	}
	if c.LogPath == "" {
		return errors.New("LogPath is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LogLevel must be debug, info, warn or error: %s", c.LogLevel)
	}
	return nil
}

func requireHTTPS(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "https" {
		return fmt.Errorf("%s must use https: %s", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s has no host: %s", name, raw)
	}
	return nil
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %q", key, raw)
	}
	return v, nil
}

func floatFromEnv(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %q", key, raw)
	}
	return v, nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 10s: %q", key, raw)
	}
	return v, nil
}
