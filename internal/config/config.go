package config

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// OpenAI configuration
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
}

// LoadConfig loads configuration from a .env file, environment variables and
// command-line flags. Flags take precedence over environment variables.
// A missing API key is not an error: the server runs with AI features
// disabled and heuristic fallbacks take over.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg := &Config{}

	// Define flags
	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key (empty runs with AI features disabled)")
	openAIModel := flag.String("openai-model", getEnv("OPENAI_MODEL", "gpt-4o-mini"), "OpenAI model for chat completions")
	openAIBaseURL := flag.String("openai-base-url", getEnv("OPENAI_BASE_URL", ""), "OpenAI-compatible API base URL override")

	flag.Parse()

	// Set config values
	cfg.ServerPort = *serverPort
	cfg.OpenAIAPIKey = *openAIKey
	cfg.OpenAIModel = *openAIModel
	cfg.OpenAIBaseURL = *openAIBaseURL

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
