package core

import (
	"strings"
	"unicode"
)

// Severity classifies the harshness of a review comment. It drives the tone
// of the generated rewrite: the harsher the original, the gentler the reply.
type Severity int

const (
	SeverityMild Severity = iota
	SeverityCritical
	SeverityHarsh
)

func (s Severity) String() string {
	switch s {
	case SeverityMild:
		return "Mild"
	case SeverityHarsh:
		return "Harsh"
	default:
		return "Critical"
	}
}

// Tone returns the instruction keyword used by prompt templates.
func (s Severity) Tone() string {
	switch s {
	case SeverityMild:
		return "collaborative, peer-to-peer"
	case SeverityHarsh:
		return "maximally gentle and encouraging"
	default:
		return "supportive but direct"
	}
}

// harshMarkers signal contempt or absolute dismissal. The exact boundary
// between harsh and critical phrasing is heuristic; this list is the
// documented choice for this implementation.
var harshMarkers = map[string]struct{}{
	"terrible": {},
	"awful":    {},
	"horrible": {},
	"stupid":   {},
	"idiotic":  {},
	"useless":  {},
	"garbage":  {},
	"wrong":    {},
	"worst":    {},
	"hate":     {},
	"lazy":     {},
}

// mildMarkers soften a comment into a suggestion or question.
var mildMarkers = map[string]struct{}{
	"maybe":      {},
	"consider":   {},
	"might":      {},
	"could":      {},
	"perhaps":    {},
	"suggest":    {},
	"suggestion": {},
	"nit":        {},
}

var mildPhrases = []string{"what if", "how about"}

// Common initialisms that should not count as all-caps shouting.
var capsAllowlist = map[string]struct{}{
	"API": {}, "SQL": {}, "URL": {}, "URI": {}, "HTTP": {}, "HTTPS": {},
	"JSON": {}, "XML": {}, "HTML": {}, "CSS": {}, "CPU": {}, "RAM": {},
	"TODO": {}, "FIXME": {}, "PEP": {}, "MDN": {},
}

// ClassifySeverity maps a raw comment to a severity level by lexical scan.
// It is a pure function of the comment text: no dependency on position in
// the comment list or on other comments. Tie-break order is Harsh over Mild
// over the Critical default, and unmatched input lands on Critical since an
// unrecognized tone should not be assumed mild or incendiary.
func ClassifySeverity(comment string) Severity {
	trimmed := strings.TrimSpace(comment)
	lower := strings.ToLower(trimmed)
	words := tokenize(trimmed)

	if isHarsh(trimmed, words) {
		return SeverityHarsh
	}
	if isMild(trimmed, lower, words) {
		return SeverityMild
	}
	return SeverityCritical
}

func isHarsh(comment string, words []string) bool {
	for _, w := range words {
		if _, ok := harshMarkers[strings.ToLower(w)]; ok {
			return true
		}
		if isShouted(w) {
			return true
		}
	}
	return strings.Count(comment, "!") >= 2
}

func isMild(comment, lower string, words []string) bool {
	if strings.HasSuffix(strings.TrimSpace(comment), "?") {
		return true
	}
	for _, w := range words {
		if _, ok := mildMarkers[strings.ToLower(w)]; ok {
			return true
		}
	}
	for _, p := range mildPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// isShouted reports whether a token reads as all-caps emphasis: three or more
// letters, every one of them uppercase, and not a well-known initialism.
func isShouted(word string) bool {
	if len(word) < 3 {
		return false
	}
	if _, ok := capsAllowlist[word]; ok {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// tokenize splits a comment into words, stripping surrounding punctuation so
// markers match regardless of quoting or sentence position.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return fields
}
