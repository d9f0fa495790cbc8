package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestNewAzureGeneratorMissingSettings(t *testing.T) {
	_, err := NewAzureGenerator(config.AzureConfig{}, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConfiguration)
	assert.Contains(t, err.Error(), "AZURE_OPENAI_API_KEY")
	assert.Contains(t, err.Error(), "GENERATOR_PROVIDER=mock")

	_, err = NewAzureGenerator(config.AzureConfig{
		APIKey:   "key",
		Endpoint: "https://example.openai.azure.com/",
	}, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrConfiguration)
	assert.Contains(t, err.Error(), "AZURE_OPENAI_API_VERSION")
	assert.NotContains(t, err.Error(), "AZURE_OPENAI_API_KEY")
}

func azureTestConfig(endpoint string) config.AzureConfig {
	return config.AzureConfig{
		APIKey:     "test-key",
		Endpoint:   endpoint,
		APIVersion: "2024-02-15-preview",
		Deployment: "gpt-4o",
	}
}

func TestAzureGeneratorGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotReq azureChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		reply := azureChatResponse{}
		reply.Choices = append(reply.Choices, struct {
			Message      azureChatMessage `json:"message"`
			FinishReason string           `json:"finish_reason"`
		}{
			Message: azureChatMessage{Role: "assistant", Content: validReply},
		})
		_ = json.NewEncoder(w).Encode(reply)
	}))
	defer srv.Close()

	gen, err := NewAzureGenerator(azureTestConfig(srv.URL), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "azure", gen.Name())

	payload := &PromptPayload{
		System:   "system text",
		User:     "user text",
		Comment:  "Variable 'u' is a bad name.",
		Severity: core.SeverityCritical,
	}

	item, err := gen.Generate(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user text", gotReq.Messages[1].Content)

	assert.Equal(t, "Variable 'u' is a bad name.", item.OriginalComment)
	assert.Equal(t, core.SeverityCritical, item.Severity)
	assert.Contains(t, item.PositiveRephrasing, "clearer name")
}

func TestAzureGeneratorBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen, err := NewAzureGenerator(azureTestConfig(srv.URL), discardLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), &PromptPayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBackend)
}

func TestAzureGeneratorMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reply := azureChatResponse{}
		reply.Choices = append(reply.Choices, struct {
			Message      azureChatMessage `json:"message"`
			FinishReason string           `json:"finish_reason"`
		}{
			Message: azureChatMessage{Role: "assistant", Content: "no sections here"},
		})
		_ = json.NewEncoder(w).Encode(reply)
	}))
	defer srv.Close()

	gen, err := NewAzureGenerator(azureTestConfig(srv.URL), discardLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), &PromptPayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrParse)

	var pf *ParseFailure
	require.ErrorAs(t, err, &pf)
	assert.Equal(t, "no sections here", pf.Raw)
}

func TestAzureGeneratorEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(azureChatResponse{})
	}))
	defer srv.Close()

	gen, err := NewAzureGenerator(azureTestConfig(srv.URL), discardLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), &PromptPayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrBackend)
}
