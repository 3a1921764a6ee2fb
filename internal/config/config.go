package config

import (
	"os"
	"strconv"

	"painel/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Synth  SynthConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds spreadsheet loading and write-safety settings
type DataConfig struct {
	Dir            string
	ReadOnly       bool
	AllowCreate    bool
	AllowOverwrite bool
}

// SynthConfig holds synthetic data generation settings
type SynthConfig struct {
	Seed      int64
	StartYear int
	EndYear   int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PAINEL_PORT", "8080"),
		},
		Data: DataConfig{
			Dir:            getEnvOrDefault("PAINEL_DATA_DIR", "dados"),
			ReadOnly:       getEnvBoolOrDefault("PAINEL_READ_ONLY", true),
			AllowCreate:    getEnvBoolOrDefault("PAINEL_ALLOW_CREATE", false),
			AllowOverwrite: getEnvBoolOrDefault("PAINEL_ALLOW_OVERWRITE", false),
		},
	}

	synth, err := loadSynthConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load generation configuration")
	}
	config.Synth = *synth

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadSynthConfig() (*SynthConfig, error) {
	seed, err := getEnvInt64OrError("PAINEL_SEED", 42)
	if err != nil {
		return nil, err
	}
	start, err := getEnvIntOrError("PAINEL_START_YEAR", 2019)
	if err != nil {
		return nil, err
	}
	end, err := getEnvIntOrError("PAINEL_END_YEAR", 2025)
	if err != nil {
		return nil, err
	}
	return &SynthConfig{
		Seed:      seed,
		StartYear: start,
		EndYear:   end,
	}, nil
}

func validateConfig(config *Config) error {
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if config.Synth.StartYear > config.Synth.EndYear {
		return errors.ConfigInvalid("start year must not exceed end year")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvIntOrError(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}

func getEnvInt64OrError(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer")
	}
	return intValue, nil
}
