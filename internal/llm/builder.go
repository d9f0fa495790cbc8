package llm

import (
	"fmt"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// PromptPayload is the fully-assembled instruction bundle for one comment.
// It carries the rendered role-tagged text for the backend plus the inputs it
// was built from, so generators can fill FeedbackItem fields without
// re-deriving anything.
type PromptPayload struct {
	System string
	User   string

	Code     string
	Comment  string
	Language string
	Severity core.Severity
}

type promptData struct {
	Code     string
	Comment  string
	Language string
}

// BuildPrompt assembles the instruction payload for a single comment. It is a
// pure function of its inputs: the snippet and the comment are embedded
// verbatim, exactly one comment per payload, and the template selected by the
// severity level encodes the requested tone and the four-section reply
// contract.
func BuildPrompt(mgr *PromptManager, provider ModelProvider, code, comment string, severity core.Severity, language string) (*PromptPayload, error) {
	system, err := mgr.Render(SystemPrompt, provider, nil)
	if err != nil {
		return nil, fmt.Errorf("rendering system prompt: %w", err)
	}

	user, err := mgr.Render(promptKeyFor(severity), provider, promptData{
		Code:     code,
		Comment:  comment,
		Language: language,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering user prompt: %w", err)
	}

	return &PromptPayload{
		System:   system,
		User:     user,
		Code:     code,
		Comment:  comment,
		Language: language,
		Severity: severity,
	}, nil
}

func promptKeyFor(severity core.Severity) PromptKey {
	switch severity {
	case core.SeverityHarsh:
		return RewriteHarshPrompt
	case core.SeverityMild:
		return RewriteMildPrompt
	default:
		return RewriteCriticalPrompt
	}
}
