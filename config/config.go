package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when neither the settings file nor the environment
// provides a value.
const (
	DefaultUserAgent      = "Mozilla/5.0 (compatible; AirbnbRoomsScraper/1.0; +https://bitbash.dev)"
	DefaultRequestTimeout = 20.0
	DefaultMaxRetries     = 2
	DefaultMaxWorkers     = 4
)

// Config holds all application-level configuration
type Config struct {
	// Fetching
	UserAgent      string
	RequestTimeout float64 // seconds, per attempt
	MaxRetries     int
	MaxWorkers     int
	RateLimitDelay int  // milliseconds between requests, 0 disables
	RenderJS       bool // fetch through a headless browser instead of plain HTTP

	// Optional sinks
	DatabaseURL string
	CSVFilePath string
}

// fileSettings mirrors the JSON settings file. Pointer fields so that
// absent keys fall through to defaults.
type fileSettings struct {
	UserAgent      *string  `json:"userAgent"`
	RequestTimeout *float64 `json:"requestTimeout"`
	MaxRetries     *int     `json:"maxRetries"`
	MaxWorkers     *int     `json:"maxWorkers"`
	RateLimitDelay *int     `json:"rateLimitDelayMs"`
	RenderJS       *bool    `json:"renderJs"`
	DatabaseURL    *string  `json:"databaseUrl"`
	CSVFilePath    *string  `json:"csvFilePath"`
}

// Logger is the small logging surface config needs during load.
type Logger interface {
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Load builds the configuration: defaults, then the JSON settings file
// (wholesale fallback to defaults when missing or malformed), then
// environment overrides. A .env file is honored if present.
func Load(settingsPath string, logger Logger) *Config {
	_ = godotenv.Load()

	cfg := &Config{
		UserAgent:      DefaultUserAgent,
		RequestTimeout: DefaultRequestTimeout,
		MaxRetries:     DefaultMaxRetries,
		MaxWorkers:     DefaultMaxWorkers,
	}

	applySettingsFile(cfg, settingsPath, logger)
	applyEnv(cfg)

	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = DefaultMaxWorkers
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return cfg
}

func applySettingsFile(cfg *Config, path string, logger Logger) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if logger != nil {
			logger.Warn("Settings file %s not readable (%v), using defaults", path, err)
		}
		return
	}

	var fs fileSettings
	if err := json.Unmarshal(data, &fs); err != nil {
		// Malformed settings fall back wholesale, not partially.
		if logger != nil {
			logger.Error("Settings file %s is not a valid JSON object (%v), using defaults", path, err)
		}
		return
	}

	if fs.UserAgent != nil {
		cfg.UserAgent = *fs.UserAgent
	}
	if fs.RequestTimeout != nil {
		cfg.RequestTimeout = *fs.RequestTimeout
	}
	if fs.MaxRetries != nil {
		cfg.MaxRetries = *fs.MaxRetries
	}
	if fs.MaxWorkers != nil {
		cfg.MaxWorkers = *fs.MaxWorkers
	}
	if fs.RateLimitDelay != nil {
		cfg.RateLimitDelay = *fs.RateLimitDelay
	}
	if fs.RenderJS != nil {
		cfg.RenderJS = *fs.RenderJS
	}
	if fs.DatabaseURL != nil {
		cfg.DatabaseURL = *fs.DatabaseURL
	}
	if fs.CSVFilePath != nil {
		cfg.CSVFilePath = *fs.CSVFilePath
	}
}

func applyEnv(cfg *Config) {
	cfg.UserAgent = getEnv("USER_AGENT", cfg.UserAgent)
	cfg.RequestTimeout = getEnvFloat("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.MaxRetries = getEnvInt("MAX_RETRIES", cfg.MaxRetries)
	cfg.MaxWorkers = getEnvInt("MAX_WORKERS", cfg.MaxWorkers)
	cfg.RateLimitDelay = getEnvInt("RATE_LIMIT_DELAY_MS", cfg.RateLimitDelay)
	cfg.RenderJS = getEnvBool("RENDER_JS", cfg.RenderJS)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.CSVFilePath = getEnv("CSV_FILE_PATH", cfg.CSVFilePath)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
