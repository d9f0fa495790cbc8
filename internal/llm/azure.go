package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

const (
	azureRequestTimeout = 60 * time.Second
	azureTemperature    = 0.7
	azureMaxTokens      = 3000
	azureTopP           = 0.9
)

// azureBackend calls the Azure OpenAI chat completions endpoint over plain
// HTTP. Endpoint, deployment, API version and key all come from configuration;
// nothing is hardcoded.
type azureBackend struct {
	cfg    config.AzureConfig
	client *http.Client
	logger *slog.Logger
}

// NewAzureGenerator builds the live generator backed by Azure OpenAI. Missing
// credentials fail immediately with a configuration error so a session never
// starts half-wired; no network call is attempted during construction.
func NewAzureGenerator(cfg config.AzureConfig, logger *slog.Logger) (ResponseGenerator, error) {
	if missing := cfg.MissingAzureSettings(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s (set them or run with GENERATOR_PROVIDER=mock)",
			core.ErrConfiguration, strings.Join(missing, ", "))
	}

	return &liveGenerator{
		backend: &azureBackend{
			cfg:    cfg,
			client: &http.Client{Timeout: azureRequestTimeout},
			logger: logger,
		},
		name:   "azure",
		logger: logger,
	}, nil
}

type azureChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureChatRequest struct {
	Messages    []azureChatMessage `json:"messages"`
	Temperature float64            `json:"temperature,omitempty"`
	MaxTokens   int                `json:"max_tokens,omitempty"`
	TopP        float64            `json:"top_p,omitempty"`
}

type azureChatResponse struct {
	Choices []struct {
		Message      azureChatMessage `json:"message"`
		FinishReason string           `json:"finish_reason"`
	} `json:"choices"`
}

func (b *azureBackend) Complete(ctx context.Context, payload *PromptPayload) (string, error) {
	url := fmt.Sprintf("%sopenai/deployments/%s/chat/completions?api-version=%s",
		ensureTrailingSlash(b.cfg.Endpoint), b.cfg.Deployment, b.cfg.APIVersion)

	body, err := json.Marshal(azureChatRequest{
		Messages: []azureChatMessage{
			{Role: "system", Content: payload.System},
			{Role: "user", Content: payload.User},
		},
		Temperature: azureTemperature,
		MaxTokens:   azureMaxTokens,
		TopP:        azureTopP,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: building request: %v", core.ErrBackend, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", b.cfg.APIKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrBackend, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", core.ErrBackend, err)
	}

	if resp.StatusCode != http.StatusOK {
		b.logger.Error("azure openai call failed",
			"status", resp.StatusCode, "body", truncate(string(respBody), 300))
		return "", fmt.Errorf("%w: azure openai returned status %d", core.ErrBackend, resp.StatusCode)
	}

	var chat azureChatResponse
	if err := json.Unmarshal(respBody, &chat); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", core.ErrBackend, err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", core.ErrBackend)
	}

	return chat.Choices[0].Message.Content, nil
}

func ensureTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
