package config

import (
	"fmt"
	"os"
	"strconv"
)

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type NominatimConfig struct {
	BaseURL   string
	UserAgent string
}

type PlannerConfig struct {
	// Cost tokens at or below this value are treated as per-person figures
	// and scaled by the traveler count. Empirically tuned against model
	// output; override per deployment rather than editing code.
	PerPersonCostThreshold int
}

type Config struct {
	ServerPort  string
	MetricsPort string
	AIProvider  string
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	Nominatim   NominatimConfig
	Planner     PlannerConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:  getEnvOrDefault("SERVER_PORT", "8091"),
		MetricsPort: getEnvOrDefault("METRICS_PORT", "9092"),
		AIProvider:  getEnvOrDefault("AI_PROVIDER", "gemini"),
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		OpenAI: OpenAIConfig{
			APIKey: os.Getenv("OPENAI_API_KEY"),
			Model:  getEnvOrDefault("OPENAI_MODEL", ""),
		},
		Nominatim: NominatimConfig{
			BaseURL:   getEnvOrDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent: getEnvOrDefault("NOMINATIM_USER_AGENT", "go-tripplanner/1.0"),
		},
		Planner: PlannerConfig{
			PerPersonCostThreshold: getEnvIntOrDefault("PER_PERSON_COST_THRESHOLD", 1000),
		},
	}

	switch cfg.AIProvider {
	case "gemini":
		if cfg.Gemini.APIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case "openai":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER %q (expected gemini or openai)", cfg.AIProvider)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
