package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	CORS     CORSConfig     `mapstructure:"cors"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	AnyLogic AnyLogicConfig `mapstructure:"anylogic"`
	Debug    bool           `mapstructure:"debug"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

// DatabaseConfig holds the connection string for the relational store.
// The default DSN points at an embedded SQLite file; a postgres:// or
// mysql:// DSN swaps in a networked store.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenAIConfig holds credentials for the chat completion provider.
// An empty API key means the provider is not configured and the chat
// endpoints report 503 instead of attempting a call.
type OpenAIConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// AnyLogicConfig holds credentials and defaults for the simulation cloud.
type AnyLogicConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	ModelName      string `mapstructure:"model_name"`
	ExperimentName string `mapstructure:"experiment_name"`
}

// Load configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/app/config")
	viper.AddConfigPath("/app")

	// --- Set Default Values ---
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("database.dsn", "file:app.db")
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	viper.SetDefault("openai.api_key", "")
	viper.SetDefault("openai.model", "gpt-3.5-turbo")
	viper.SetDefault("anylogic.api_key", "")
	viper.SetDefault("anylogic.base_url", "https://cloud.anylogic.com/api/open/8.5.0")
	viper.SetDefault("anylogic.model_name", "Service System Demo")
	viper.SetDefault("anylogic.experiment_name", "Baseline")
	viper.SetDefault("debug", false)

	// --- Read Config File (Optional) ---
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Info("Config file not found, using defaults and environment variables.")
		} else {
			logrus.Warnf("Error reading config file: %v", err)
		}
	}

	// --- Bind Environment Variables ---
	viper.SetEnvPrefix("API")
	viper.AutomaticEnv()

	// --- Unmarshal Config ---
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// --- Manual Override from Specific Environment Variables (Highest Priority) ---
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.OpenAI.Model = model
	}
	if key := os.Getenv("ANYLOGIC_API_KEY"); key != "" {
		cfg.AnyLogic.APIKey = key
	}
	if url := os.Getenv("ANYLOGIC_BASE_URL"); url != "" {
		cfg.AnyLogic.BaseURL = url
	}
	if name := os.Getenv("ANYLOGIC_MODEL_NAME"); name != "" {
		cfg.AnyLogic.ModelName = name
	}
	if name := os.Getenv("ANYLOGIC_EXPERIMENT_NAME"); name != "" {
		cfg.AnyLogic.ExperimentName = name
	}
	if debugStr := os.Getenv("DEBUG"); debugStr != "" {
		cfg.Debug = strings.EqualFold(debugStr, "true") || debugStr == "1"
	}

	// Handle CORS_ALLOWED_ORIGINS env var (comma-separated string -> slice)
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}

	logrus.Infof("Configuration loaded: Server Port=%d, DB DSN=%s, OpenAI configured=%t, AnyLogic configured=%t",
		cfg.Server.Port, cfg.Database.DSN, cfg.OpenAI.APIKey != "", cfg.AnyLogic.APIKey != "")

	return &cfg, nil
}
