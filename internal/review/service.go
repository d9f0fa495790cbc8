// Package review orchestrates a full review session: validate the request,
// classify each comment, build its prompt, run the response generator and
// assemble the final Markdown report.
package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/llm"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/report"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/storage"
)

// Service runs review sessions. The generator is fixed at construction; a
// session never switches between live and mock per comment.
type Service struct {
	gen       llm.ResponseGenerator
	promptMgr *llm.PromptManager
	provider  llm.ModelProvider
	store     storage.Store // nil disables report history
	logger    *slog.Logger
}

// NewService creates a review service. The store may be nil.
func NewService(gen llm.ResponseGenerator, promptMgr *llm.PromptManager, store storage.Store, logger *slog.Logger) *Service {
	if gen == nil {
		panic("generator cannot be nil")
	}
	if promptMgr == nil {
		panic("prompt manager cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Service{
		gen:       gen,
		promptMgr: promptMgr,
		provider:  llm.DefaultProvider,
		store:     store,
		logger:    logger,
	}
}

// SessionResult is the terminal artifact of one session.
type SessionResult struct {
	ID       string
	Report   *core.ReviewReport
	Markdown string
}

// Run executes one review session. Comments are processed strictly in input
// order, one blocking generation call each. Per-comment failures degrade to a
// placeholder item after a single retry; only input validation fails the
// whole session.
func (s *Service) Run(ctx context.Context, req *core.ReviewRequest) (*SessionResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	language := req.Language()
	s.logger.Info("starting review session",
		"session", sessionID,
		"generator", s.gen.Name(),
		"comments", len(req.ReviewComments),
		"language", language,
	)

	items := make([]core.FeedbackItem, 0, len(req.ReviewComments))
	for i, comment := range req.ReviewComments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		severity := core.ClassifySeverity(comment)
		payload, err := llm.BuildPrompt(s.promptMgr, s.provider, req.CodeSnippet, comment, severity, language)
		if err != nil {
			return nil, err
		}

		item := s.generateWithRetry(ctx, payload)
		s.logger.Debug("comment processed",
			"session", sessionID,
			"index", i,
			"severity", severity.String(),
			"degraded", item.Degraded,
		)
		items = append(items, item)
	}

	rep := &core.ReviewReport{
		Items:          items,
		OverallSummary: report.Summarize(items),
		Language:       language,
	}

	result := &SessionResult{
		ID:       sessionID,
		Report:   rep,
		Markdown: report.Assemble(rep),
	}

	if s.store != nil {
		rec := &storage.ReportRecord{
			ID:           result.ID,
			CreatedAt:    time.Now().UTC(),
			Language:     language,
			CommentCount: len(items),
			Markdown:     result.Markdown,
		}
		if err := s.store.SaveReport(ctx, rec); err != nil {
			// History is best-effort; the session already succeeded.
			s.logger.Error("failed to persist report", "session", sessionID, "error", err)
		}
	}

	s.logger.Info("review session finished", "session", sessionID)
	return result, nil
}

// generateWithRetry performs one generation call, retries once on recoverable
// failures, and falls back to a degraded item so one bad comment never sinks
// the session.
func (s *Service) generateWithRetry(ctx context.Context, payload *llm.PromptPayload) core.FeedbackItem {
	item, err := s.gen.Generate(ctx, payload)
	if err == nil {
		return item
	}

	if errors.Is(err, core.ErrBackend) || errors.Is(err, core.ErrParse) {
		s.logger.Warn("generation failed, retrying once", "generator", s.gen.Name(), "error", err)
		if item, err = s.gen.Generate(ctx, payload); err == nil {
			return item
		}
	}

	s.logger.Error("generation failed after retry, degrading item", "error", err)
	return degradedItem(payload, err)
}

func degradedItem(payload *llm.PromptPayload, err error) core.FeedbackItem {
	rationale := "Automatic generation failed for this comment."

	var pf *llm.ParseFailure
	if errors.As(err, &pf) && strings.TrimSpace(pf.Raw) != "" {
		rationale += " The raw backend reply is preserved below:\n\n" + strings.TrimSpace(pf.Raw)
	} else if err != nil {
		rationale += " Error: " + err.Error()
	}

	return core.FeedbackItem{
		OriginalComment:    payload.Comment,
		PositiveRephrasing: "A rewrite could not be generated for this comment this time; the original is quoted above so nothing is lost.",
		Rationale:          rationale,
		Severity:           payload.Severity,
		Degraded:           true,
	}
}
