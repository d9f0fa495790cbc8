package llm

import (
	"fmt"
	"strings"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// Section markers the backend is instructed to emit. Parsing is deliberately
// strict: every marker must be present, in order. Any deviation is a parse
// error rather than an attempt at fuzzy extraction, which keeps the contract
// unambiguous per comment.
var sectionMarkers = []string{
	"### POSITIVE_REPHRASING",
	"### RATIONALE",
	"### SUGGESTED_CODE",
	"### RESOURCES",
}

// ParsedReply holds the four labeled fields extracted from a backend reply.
type ParsedReply struct {
	PositiveRephrasing string
	Rationale          string
	SuggestedCode      string
	Resources          []string
}

// ParseFailure wraps core.ErrParse and preserves the raw reply so callers can
// surface it in a degraded FeedbackItem instead of losing it.
type ParseFailure struct {
	Raw    string
	Reason string
}

func (e *ParseFailure) Error() string {
	return fmt.Sprintf("%v: %s", core.ErrParse, e.Reason)
}

func (e *ParseFailure) Unwrap() error { return core.ErrParse }

// ParseReply extracts the four labeled sections from a backend reply.
func ParseReply(raw string) (*ParsedReply, error) {
	text := stripMarkdownFence(raw)
	lines := strings.Split(text, "\n")

	// Locate each marker line, requiring strict order.
	positions := make([]int, 0, len(sectionMarkers))
	next := 0
	for i, line := range lines {
		if next >= len(sectionMarkers) {
			break
		}
		if markerLine(line) == sectionMarkers[next] {
			positions = append(positions, i)
			next++
		}
	}
	if len(positions) != len(sectionMarkers) {
		return nil, &ParseFailure{
			Raw:    raw,
			Reason: fmt.Sprintf("reply contains %d of %d expected sections", len(positions), len(sectionMarkers)),
		}
	}

	section := func(idx int) string {
		start := positions[idx] + 1
		end := len(lines)
		if idx+1 < len(positions) {
			end = positions[idx+1]
		}
		return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
	}

	reply := &ParsedReply{
		PositiveRephrasing: section(0),
		Rationale:          section(1),
		SuggestedCode:      stripCodeFence(section(2)),
		Resources:          parseResourceList(section(3)),
	}

	if reply.PositiveRephrasing == "" || reply.Rationale == "" {
		return nil, &ParseFailure{Raw: raw, Reason: "rephrasing or rationale section is empty"}
	}
	return reply, nil
}

// markerLine normalizes a line for marker comparison. Some models vary the
// casing or append trailing punctuation; anything beyond that is rejected.
func markerLine(line string) string {
	trimmed := strings.ToUpper(strings.TrimSpace(line))
	trimmed = strings.TrimRight(trimmed, ":")
	return trimmed
}

// parseResourceList turns markdown list items into resource entries. A
// section with no list items yields an empty slice, which the report
// assembler renders as no "Learn More" block at all.
func parseResourceList(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
			out = append(out, strings.TrimSpace(rest))
		} else if rest, ok := strings.CutPrefix(trimmed, "* "); ok {
			out = append(out, strings.TrimSpace(rest))
		}
	}
	return out
}

// stripMarkdownFence removes a ```markdown ... ``` wrapper that some models
// add around their whole output.
func stripMarkdownFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "```markdown") || strings.HasPrefix(trimmed, "```md") {
		idx := strings.Index(trimmed, "\n")
		if idx < 0 {
			return s
		}
		inner := trimmed[idx+1:]
		if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
			inner = inner[:lastFence]
		}
		return strings.TrimSpace(inner)
	}
	return s
}

// stripCodeFence unwraps a fenced code block, dropping the language tag line
// and the closing fence.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	idx := strings.Index(trimmed, "\n")
	if idx < 0 {
		return ""
	}
	inner := trimmed[idx+1:]
	if lastFence := strings.LastIndex(inner, "```"); lastFence >= 0 {
		inner = inner[:lastFence]
	}
	return strings.Trim(inner, "\n")
}
