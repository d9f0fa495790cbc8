// Package config loads the application's configuration from environment
// variables and an optional .env file. The loaded Config struct is passed
// explicitly into every component; nothing reads ambient environment state
// after startup.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/logger"
)

// Generator provider names. The provider is chosen once per session and never
// switches per comment.
const (
	ProviderMock   = "mock"
	ProviderAzure  = "azure"
	ProviderOllama = "ollama"
)

// AzureConfig holds the connection settings for the Azure OpenAI backend.
// All four fields are required when the azure provider is selected.
type AzureConfig struct {
	APIKey     string
	Endpoint   string
	APIVersion string
	Deployment string
}

// OllamaConfig holds the connection settings for a local Ollama backend.
type OllamaConfig struct {
	Host  string
	Model string
}

// DBConfig holds the optional report-history database settings.
type DBConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Config holds all application configuration values.
type Config struct {
	Provider   string
	ServerPort string
	Log        logger.Config
	Azure      AzureConfig
	Ollama     OllamaConfig
	DB         DBConfig
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, and validates the generator provider. Credential
// validation for live providers happens at generator construction so that
// mock mode never requires any settings at all.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("GENERATOR_PROVIDER", ProviderMock)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stderr")
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("OLLAMA_MODEL", "llama3")
	viper.SetDefault("DB_ENABLED", false)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "reviewer")
	viper.SetDefault("DB_NAME", "reviewer")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Debug("no .env file loaded", "error", err)
		}
	}

	provider := strings.ToLower(viper.GetString("GENERATOR_PROVIDER"))
	if provider == "" {
		// A bound-but-unset CLI flag can shadow the default.
		provider = ProviderMock
	}
	switch provider {
	case ProviderMock, ProviderAzure, ProviderOllama:
	default:
		return nil, fmt.Errorf("unsupported GENERATOR_PROVIDER %q (expected mock, azure or ollama)", provider)
	}

	return &Config{
		Provider:   provider,
		ServerPort: viper.GetString("SERVER_PORT"),
		Log: logger.Config{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
			Output: viper.GetString("LOG_OUTPUT"),
		},
		Azure: AzureConfig{
			APIKey:     viper.GetString("AZURE_OPENAI_API_KEY"),
			Endpoint:   viper.GetString("AZURE_OPENAI_ENDPOINT"),
			APIVersion: viper.GetString("AZURE_OPENAI_API_VERSION"),
			Deployment: viper.GetString("AZURE_OPENAI_DEPLOYMENT_NAME"),
		},
		Ollama: OllamaConfig{
			Host:  viper.GetString("OLLAMA_HOST"),
			Model: viper.GetString("OLLAMA_MODEL"),
		},
		DB: DBConfig{
			Enabled:  viper.GetBool("DB_ENABLED"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
	}, nil
}

// MissingAzureSettings lists the Azure settings that are absent, in a fixed
// order so error messages are stable.
func (a AzureConfig) MissingAzureSettings() []string {
	var missing []string
	if a.APIKey == "" {
		missing = append(missing, "AZURE_OPENAI_API_KEY")
	}
	if a.Endpoint == "" {
		missing = append(missing, "AZURE_OPENAI_ENDPOINT")
	}
	if a.APIVersion == "" {
		missing = append(missing, "AZURE_OPENAI_API_VERSION")
	}
	if a.Deployment == "" {
		missing = append(missing, "AZURE_OPENAI_DEPLOYMENT_NAME")
	}
	return missing
}
