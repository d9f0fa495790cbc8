// Package report renders a sequence of feedback items into the final
// Markdown document. Rendering is pure: no I/O, and byte-identical input
// produces byte-identical output, so reports can be snapshot-tested.
package report

import (
	"fmt"
	"strings"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
)

// Assemble renders the report. Items appear in input order, each introduced
// by a horizontal rule and a heading quoting the original comment verbatim,
// followed by the four labeled blocks. The Learn More block is omitted
// entirely for items with no resources, and degraded items carry a visible
// warning so the reader never mistakes fallback output for a real rewrite.
func Assemble(r *core.ReviewReport) string {
	var b strings.Builder

	for _, item := range r.Items {
		b.WriteString("---\n\n")
		fmt.Fprintf(&b, "### Analysis of Comment: \"%s\"\n\n", item.OriginalComment)

		if item.Degraded {
			b.WriteString("> **Note:** automatic generation failed for this comment; the content below is best-effort.\n\n")
		}

		fmt.Fprintf(&b, "* **Positive Rephrasing:** %s\n\n", item.PositiveRephrasing)
		fmt.Fprintf(&b, "* **The \"Why\":** %s\n\n", item.Rationale)

		if item.SuggestedCode != "" {
			b.WriteString("* **Suggested Improvement:**\n\n")
			fmt.Fprintf(&b, "```%s\n%s\n```\n\n", r.Language, item.SuggestedCode)
		}

		if len(item.Resources) > 0 {
			b.WriteString("* **Learn More:**\n")
			for _, res := range item.Resources {
				fmt.Fprintf(&b, "  - %s\n", res)
			}
			b.WriteString("\n")
		}
	}

	if r.OverallSummary != "" {
		b.WriteString("---\n\n")
		b.WriteString("## Overall Summary\n\n")
		b.WriteString(r.OverallSummary)
		b.WriteString("\n")
	}

	return b.String()
}
