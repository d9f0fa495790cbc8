package llm

import (
	"context"
	"log/slog"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// ResponseGenerator produces one FeedbackItem from one prompt payload. The
// two live variants and the mock all satisfy this contract; which one a
// session uses is decided once at construction, never per call.
type ResponseGenerator interface {
	// Generate performs one blocking generation call. Errors wrapping
	// core.ErrBackend or core.ErrParse are recoverable per comment; the
	// caller may retry once and then degrade.
	Generate(ctx context.Context, payload *PromptPayload) (core.FeedbackItem, error)

	// Name identifies the generator variant for logging.
	Name() string
}

// completer is the transport seam between the live generator and a concrete
// backend. It returns the raw reply text.
type completer interface {
	Complete(ctx context.Context, payload *PromptPayload) (string, error)
}

// liveGenerator sends the payload to a backend and parses the four-section
// reply into a FeedbackItem.
type liveGenerator struct {
	backend completer
	name    string
	logger  *slog.Logger
}

func (g *liveGenerator) Name() string { return g.name }

func (g *liveGenerator) Generate(ctx context.Context, payload *PromptPayload) (core.FeedbackItem, error) {
	raw, err := g.backend.Complete(ctx, payload)
	if err != nil {
		return core.FeedbackItem{}, err
	}

	parsed, err := ParseReply(raw)
	if err != nil {
		g.logger.Warn("backend reply did not match the section contract",
			"generator", g.name, "error", err)
		return core.FeedbackItem{}, err
	}

	return core.FeedbackItem{
		OriginalComment:    payload.Comment,
		PositiveRephrasing: parsed.PositiveRephrasing,
		Rationale:          parsed.Rationale,
		SuggestedCode:      parsed.SuggestedCode,
		Resources:          parsed.Resources,
		Severity:           payload.Severity,
	}, nil
}
