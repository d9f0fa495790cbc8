package llm

import (
	"context"
	"regexp"
	"strings"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// mockGenerator synthesizes all four feedback fields locally, with no network
// access and no randomness. Identical input always yields an identical
// FeedbackItem, which makes it suitable for offline demos and reproducible
// tests. It never fails.
type mockGenerator struct{}

// NewMockGenerator builds the deterministic offline generator.
func NewMockGenerator() ResponseGenerator { return &mockGenerator{} }

func (*mockGenerator) Name() string { return "mock" }

func (*mockGenerator) Generate(ctx context.Context, payload *PromptPayload) (core.FeedbackItem, error) {
	if err := ctx.Err(); err != nil {
		return core.FeedbackItem{}, err
	}

	principle := detectPrinciple(payload.Comment)

	return core.FeedbackItem{
		OriginalComment:    payload.Comment,
		PositiveRephrasing: rephraseFor(principle, payload.Severity),
		Rationale:          rationaleFor(principle),
		SuggestedCode:      improveSnippet(payload.Code, payload.Language, principle),
		Resources:          resourcesFor(principle, payload.Language),
		Severity:           payload.Severity,
	}, nil
}

// principle is the underlying concern a comment is really about. The mock
// keys all four generated fields off it.
type principle int

const (
	principleReadability principle = iota
	principleNaming
	principleRedundancy
	principleEfficiency
	principleMagicNumbers
	principleErrorHandling
	principleDocumentation
)

func detectPrinciple(comment string) principle {
	lower := strings.ToLower(comment)
	switch {
	case strings.Contains(lower, "name") || strings.Contains(lower, "naming"):
		return principleNaming
	case strings.Contains(lower, "redundant") || strings.Contains(lower, "unnecessary") ||
		strings.Contains(lower, "duplicate") || strings.Contains(lower, "== true"):
		return principleRedundancy
	case strings.Contains(lower, "inefficien") || strings.Contains(lower, "slow") ||
		strings.Contains(lower, "performance") || strings.Contains(lower, "loop"):
		return principleEfficiency
	case strings.Contains(lower, "magic"):
		return principleMagicNumbers
	case strings.Contains(lower, "error") || strings.Contains(lower, "exception") ||
		strings.Contains(lower, "panic"):
		return principleErrorHandling
	case strings.Contains(lower, "docstring") || strings.Contains(lower, "document") ||
		strings.Contains(lower, "comment"):
		return principleDocumentation
	default:
		return principleReadability
	}
}

// rephraseFor builds the softened restatement. It deliberately never quotes
// the original comment, so harsh wording can never leak into the rewrite.
func rephraseFor(p principle, severity core.Severity) string {
	var lead string
	switch severity {
	case core.SeverityHarsh:
		lead = "You've clearly put real work into this, and the overall shape is solid. "
	case core.SeverityMild:
		lead = "Good instinct here. "
	default:
		lead = "This works well as a starting point. "
	}

	var ask string
	switch p {
	case principleNaming:
		ask = "Let's pick a more descriptive name so the intent is obvious at a glance."
	case principleRedundancy:
		ask = "We can trim a small redundancy to keep the logic crisp."
	case principleEfficiency:
		ask = "There's an opportunity to make this pass over the data a little cheaper."
	case principleMagicNumbers:
		ask = "Naming this constant would make the value self-explanatory."
	case principleErrorHandling:
		ask = "Handling the failure path explicitly would make this sturdier."
	case principleDocumentation:
		ask = "A short note on the intent would help the next reader."
	default:
		ask = "A small restructuring would make this easier to follow."
	}

	return lead + ask
}

func rationaleFor(p principle) string {
	switch p {
	case principleNaming:
		return "Descriptive names carry intent. A reader should understand what a value holds without tracing every usage; single-letter or vague names force that tracing and slow down every future review of this code."
	case principleRedundancy:
		return "Comparing a boolean to True or False restates what the value already expresses. Removing the comparison cuts visual noise and eliminates a spot where subtle truthiness bugs like to hide."
	case principleEfficiency:
		return "Each full pass over a collection costs time proportional to its size. Collapsing repeated passes into one keeps the work linear and makes the cost of the function predictable as inputs grow."
	case principleMagicNumbers:
		return "A bare literal tells the reader what the value is but not why. Binding it to a named constant documents the reasoning and gives future changes a single place to land."
	case principleErrorHandling:
		return "Failures that are swallowed or implicit surface later as confusing behavior far from their cause. Handling the error where it occurs keeps the failure mode local and debuggable."
	case principleDocumentation:
		return "Code explains how; a short comment or docstring explains why. Recording the intent next to the implementation saves the next reader from reverse-engineering it."
	default:
		return "Code is read far more often than it is written. Structuring it so the main path reads top-to-bottom keeps maintenance cheap and reviews fast."
	}
}

func resourcesFor(p principle, language string) []string {
	python := language == "python"
	switch p {
	case principleNaming:
		if python {
			return []string{"[PEP 8 – Naming Conventions](https://peps.python.org/pep-0008/#naming-conventions)"}
		}
		return []string{"[Google Style Guides – Naming](https://google.github.io/styleguide/)"}
	case principleRedundancy:
		if python {
			return []string{"[PEP 8 – Programming Recommendations](https://peps.python.org/pep-0008/#programming-recommendations)"}
		}
		return []string{"[Code Simplicity – Boolean Expressions](https://google.github.io/styleguide/)"}
	case principleEfficiency:
		if python {
			return []string{"[Python Wiki – Time Complexity](https://wiki.python.org/moin/TimeComplexity)"}
		}
		return []string{"[Big-O Cheat Sheet](https://www.bigocheatsheet.com/)"}
	case principleErrorHandling:
		return []string{"[Error Handling Patterns](https://en.wikipedia.org/wiki/Exception_handling)"}
	case principleMagicNumbers:
		return []string{"[Refactoring – Replace Magic Literal](https://refactoring.com/catalog/replaceMagicLiteral.html)"}
	case principleDocumentation:
		return []string{"[Write the Docs – Documentation Principles](https://www.writethedocs.org/guide/writing/docs-principles/)"}
	default:
		return nil
	}
}

var (
	shortIdentRegex = regexp.MustCompile(`\b[a-z]\b`)
	boolCompRegex   = regexp.MustCompile(`\s*==\s*[Tt]rue\b`)
)

// Descriptive replacements for the single-letter names that show up most in
// review examples. Unlisted letters get a generic but stable expansion.
var identifierNames = map[string]string{
	"u": "user",
	"i": "index",
	"j": "inner_index",
	"k": "key",
	"n": "count",
	"s": "text",
	"x": "value",
	"v": "item",
	"c": "current",
	"d": "data",
}

// improveSnippet produces the suggested code. For complaints that imply a
// concrete mechanical fix (naming, redundancy) it rewrites the snippet so the
// suggestion visibly differs from the input; for the rest it prefixes the
// snippet with a language-appropriate comment stating the direction of the
// change.
func improveSnippet(code, language string, p principle) string {
	improved := code
	switch p {
	case principleNaming:
		improved = renameShortIdentifiers(code)
	case principleRedundancy:
		improved = boolCompRegex.ReplaceAllString(code, "")
	}

	if improved != code {
		return improved
	}

	note := commentPrefix(language) + " " + adviceFor(p)
	return note + "\n" + code
}

// renameShortIdentifiers expands single-letter identifiers that occur more
// than once (a name referenced repeatedly is worth a real name; a one-off
// like a short function name is left alone).
func renameShortIdentifiers(code string) string {
	counts := map[string]int{}
	for _, m := range shortIdentRegex.FindAllString(code, -1) {
		counts[m]++
	}

	return shortIdentRegex.ReplaceAllStringFunc(code, func(m string) string {
		if counts[m] < 2 {
			return m
		}
		if name, ok := identifierNames[m]; ok {
			return name
		}
		return m + "_value"
	})
}

func adviceFor(p principle) string {
	switch p {
	case principleEfficiency:
		return "Collapse the repeated passes into a single traversal:"
	case principleMagicNumbers:
		return "Extract the literal into a named constant:"
	case principleErrorHandling:
		return "Handle the failure path explicitly:"
	case principleDocumentation:
		return "Document the intent alongside the implementation:"
	default:
		return "Restructure so the main path reads top to bottom:"
	}
}

func commentPrefix(language string) string {
	switch language {
	case "go", "javascript", "java", "cpp":
		return "//"
	default:
		return "#"
	}
}
