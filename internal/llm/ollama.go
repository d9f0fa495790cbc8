package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// ollamaBackend runs the prompt through a local Ollama model. It is a
// credential-free live alternative to the Azure backend for self-hosted
// setups.
type ollamaBackend struct {
	model llms.Model
}

// NewOllamaGenerator builds the live generator backed by a local Ollama
// server.
func NewOllamaGenerator(cfg config.OllamaConfig, logger *slog.Logger) (ResponseGenerator, error) {
	model, err := ollama.New(
		ollama.WithServerURL(cfg.Host),
		ollama.WithModel(cfg.Model),
		ollama.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: creating ollama client: %v", core.ErrConfiguration, err)
	}

	return &liveGenerator{
		backend: &ollamaBackend{model: model},
		name:    "ollama",
		logger:  logger,
	}, nil
}

func (b *ollamaBackend) Complete(ctx context.Context, payload *PromptPayload) (string, error) {
	// Ollama's single-prompt API has no separate system role, so the role
	// instructions are prepended to the user content.
	prompt := payload.System + "\n\n" + payload.User

	resp, err := llms.GenerateFromSinglePrompt(ctx, b.model, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrBackend, err)
	}
	return resp, nil
}
