package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
		Mode string `yaml:"mode"`
	} `yaml:"server"`

	Catalog struct {
		DataDir string   `yaml:"data_dir"`
		Files   []string `yaml:"files"`
	} `yaml:"catalog"`

	Recommendation struct {
		DefaultCount int `yaml:"default_count"`
		MaxCount     int `yaml:"max_count"`
	} `yaml:"recommendation"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// A .env file is optional; ignore when absent
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	loadFromEnv(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Catalog.DataDir = "data"
	config.Catalog.Files = []string{"uk.json", "us.json"}

	config.Recommendation.DefaultCount = 5
	config.Recommendation.MaxCount = 15

	config.CORS.AllowedOrigins = []string{"*"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) {
	config.Server.Port = GetEnv("SERVER_PORT", config.Server.Port)
	config.Server.Mode = GetEnv("SERVER_MODE", config.Server.Mode)

	config.Catalog.DataDir = GetEnv("CATALOG_DATA_DIR", config.Catalog.DataDir)
	if files := GetEnv("CATALOG_FILES", ""); files != "" {
		config.Catalog.Files = splitAndTrim(files)
	}

	config.Recommendation.DefaultCount = GetEnvAsInt("RECOMMENDATION_DEFAULT_COUNT", config.Recommendation.DefaultCount)
	config.Recommendation.MaxCount = GetEnvAsInt("RECOMMENDATION_MAX_COUNT", config.Recommendation.MaxCount)

	if origins := GetEnv("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		config.CORS.AllowedOrigins = splitAndTrim(origins)
	}

	config.Logging.Level = GetEnv("LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = GetEnv("LOG_FORMAT", config.Logging.Format)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Catalog.DataDir == "" {
		return fmt.Errorf("catalog data directory is required")
	}

	if len(config.Catalog.Files) == 0 {
		return fmt.Errorf("at least one catalog file is required")
	}

	if config.Recommendation.DefaultCount < 1 {
		return fmt.Errorf("recommendation default count must be at least 1")
	}

	if config.Recommendation.MaxCount < config.Recommendation.DefaultCount {
		return fmt.Errorf("recommendation max count cannot be below the default count")
	}

	return nil
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
