package report

import (
	"fmt"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// Summarize builds the closing summary paragraph from the severity mix of the
// session. It is deterministic so that mock-mode reports are reproducible,
// and it is shared by both generator modes so the closing tone never depends
// on which backend produced the items.
func Summarize(items []core.FeedbackItem) string {
	if len(items) == 0 {
		return ""
	}

	var harsh, critical int
	for _, item := range items {
		switch item.Severity {
		case core.SeverityHarsh:
			harsh++
		case core.SeverityCritical:
			critical++
		}
	}

	plural := "s"
	if len(items) == 1 {
		plural = ""
	}

	var middle string
	switch {
	case harsh > 0:
		middle = "Some of the original feedback was phrased more bluntly than it needed to be; the suggestions above carry the same substance with the context and encouragement you deserve."
	case critical > 0:
		middle = "The suggestions above focus on small, concrete improvements that compound quickly."
	default:
		middle = "The remaining suggestions are light-touch refinements, so take them as ideas rather than obligations."
	}

	return fmt.Sprintf(
		"Thanks for sharing this work. This review covered %d comment%s. %s Keep iterating: every change suggested here is a normal part of polishing good software.",
		len(items), plural, middle)
}
