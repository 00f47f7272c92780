package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
type Config struct {
	// Base URL of the tournament REST API, e.g. "http://localhost:3000/api".
	APIBaseURL string

	// Port the console listens on.
	ServerPort int

	// Path of the file the session (token + user) is persisted to between runs.
	SessionFile string

	// Cloudflare R2 credentials for team crest uploads. All five must be set
	// for uploads to be enabled; otherwise the crest field stays URL-only.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// CrestUploadEnabled reports whether the R2 uploader can be constructed.
func (c *Config) CrestUploadEnabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

// Load reads the configuration from environment variables, optionally
// pre-loading a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("API_BASE_URL environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "4200"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".session.json"
	}

	cfg := &Config{
		APIBaseURL:        apiURL,
		ServerPort:        port,
		SessionFile:       sessionFile,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}
