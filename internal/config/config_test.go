package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProviderMock, cfg.Provider, "mock is the zero-setup default")
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.DB.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "AZURE")
	t.Setenv("AZURE_OPENAI_API_KEY", "k")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProviderAzure, cfg.Provider, "provider names are case-insensitive")
	assert.Equal(t, "k", cfg.Azure.APIKey)
	assert.Equal(t, "9999", cfg.ServerPort)
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "gpt-magic")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpt-magic")
}

func TestMissingAzureSettings(t *testing.T) {
	all := AzureConfig{}.MissingAzureSettings()
	assert.Equal(t, []string{
		"AZURE_OPENAI_API_KEY",
		"AZURE_OPENAI_ENDPOINT",
		"AZURE_OPENAI_API_VERSION",
		"AZURE_OPENAI_DEPLOYMENT_NAME",
	}, all)

	complete := AzureConfig{
		APIKey:     "k",
		Endpoint:   "https://example.openai.azure.com/",
		APIVersion: "2024-02-15-preview",
		Deployment: "gpt-4o",
	}
	assert.Empty(t, complete.MissingAzureSettings())
}
