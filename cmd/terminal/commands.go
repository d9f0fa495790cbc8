package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/app"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/config"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/llm"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/review"
)

// initServiceCmd wires the review pipeline in the background so the UI can
// show a spinner while live backends are constructed.
func initServiceCmd(cfg *config.Config, log *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		gen, err := app.NewGenerator(cfg, log)
		if err != nil {
			return serviceReadyMsg{err: err}
		}

		promptMgr, err := llm.NewPromptManager()
		if err != nil {
			return serviceReadyMsg{err: err}
		}

		svc := review.NewService(gen, promptMgr, nil, log)
		return serviceReadyMsg{svc: svc, genName: gen.Name()}
	}
}

// generateCmd runs one full review session and renders the report for the
// viewport.
func generateCmd(svc *review.Service, req *core.ReviewRequest, width int) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Run(context.Background(), req)
		if err != nil {
			return reportReadyMsg{err: err}
		}

		rendered := result.Markdown
		if renderer, rerr := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		); rerr == nil {
			if out, rerr := renderer.Render(result.Markdown); rerr == nil {
				rendered = out
			}
		}

		return reportReadyMsg{markdown: result.Markdown, rendered: rendered}
	}
}
