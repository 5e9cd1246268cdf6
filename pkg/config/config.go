package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	LogFormat   string

	// Google Places integration
	GoogleMapsAPIKey  string
	GoogleMapsBaseURL string

	// Search behavior
	SearchRadiusMeters int
	ResultsPerCategory int
	MaxSearchResults   int

	// Outreach simulation
	OutreachSendDelay time.Duration

	// Security configuration
	AllowedOrigins string
	MaxRequestSize int64
}

// New creates a new configuration instance from environment variables
func New() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),

		GoogleMapsAPIKey:  getEnv("GOOGLE_MAPS_API_KEY", ""),
		GoogleMapsBaseURL: getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),

		SearchRadiusMeters: getEnvAsInt("SEARCH_RADIUS_METERS", 5000),
		ResultsPerCategory: getEnvAsInt("RESULTS_PER_CATEGORY", 3),
		MaxSearchResults:   getEnvAsInt("MAX_SEARCH_RESULTS", 8),

		OutreachSendDelay: getEnvAsDuration("OUTREACH_SEND_DELAY", 2*time.Second),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		MaxRequestSize: getEnvAsInt64("MAX_REQUEST_SIZE", 1*1024*1024), // 1MB default
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasGoogleMapsCredentials returns true if a Places API key is configured
func (c *Config) HasGoogleMapsCredentials() bool {
	return c.GoogleMapsAPIKey != ""
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}
	return strings.Split(c.AllowedOrigins, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
