package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultMessagesURL is the public message source used when MESSAGES_URL is unset.
const DefaultMessagesURL = "https://november7-730026606190.europe-west1.run.app/messages"

// Config holds application configuration values loaded from environment variables.
type Config struct {
	HTTPPort        string
	MessagesURL     string
	MessagesTimeout time.Duration
	LogLevel        string
	LogFormat       string
	DatabaseURL     string // optional; empty disables the question log
	JWTSecret       string // optional; empty leaves /ask public
	RateLimitRPS    float64
	RateLimitBurst  int
	AllowedOrigins  []string

	// Warnings collects non-fatal problems found while loading, so they can be
	// logged once the logger exists.
	Warnings []string
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Attempt to load .env file (useful for development)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		cfg.warn("could not load .env file, using environment variables only: %v", err)
	}

	cfg.HTTPPort = getEnv("HTTP_PORT", "8080")
	cfg.MessagesURL = getEnv("MESSAGES_URL", DefaultMessagesURL)
	if u, err := url.Parse(cfg.MessagesURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid MESSAGES_URL %q", cfg.MessagesURL)
	}

	timeoutSeconds := cfg.getInt("MESSAGES_TIMEOUT_SECONDS", 5)
	cfg.MessagesTimeout = time.Duration(timeoutSeconds) * time.Second

	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", "json"))
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.RateLimitRPS = cfg.getFloat("RATE_LIMIT_RPS", 5)
	cfg.RateLimitBurst = cfg.getInt("RATE_LIMIT_BURST", 10)
	cfg.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))

	return cfg, nil
}

func (c *Config) warn(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

// getInt reads a positive integer, falling back to the default on bad input.
func (c *Config) getInt(key string, fallback int) int {
	raw := getEnv(key, strconv.Itoa(fallback))
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		c.warn("invalid %s %q, using default %d", key, raw, fallback)
		return fallback
	}
	return v
}

// getFloat reads a positive number, falling back to the default on bad input.
func (c *Config) getFloat(key string, fallback float64) float64 {
	raw := getEnv(key, strconv.FormatFloat(fallback, 'f', -1, 64))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		c.warn("invalid %s %q, using default %v", key, raw, fallback)
		return fallback
	}
	return v
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
