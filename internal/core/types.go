// Package core defines the domain types and pure functions that form the
// backbone of the empathic reviewer: review requests, severity levels,
// feedback items and the final report. Everything here is free of I/O so the
// whole pipeline stays deterministic and testable.
package core

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ReviewRequest is the sole input of a review session: one code snippet and
// an ordered list of raw review comments. It is immutable once constructed.
type ReviewRequest struct {
	CodeSnippet    string   `json:"code_snippet" validate:"required"`
	ReviewComments []string `json:"review_comments" validate:"required,min=1,dive,required"`
	LanguageHint   string   `json:"language_hint,omitempty"`
}

// Validate checks the request against the input schema. All schema violations
// are reported as ErrInvalidInput so callers can fail fast before any
// generation call is attempted.
func (r *ReviewRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %q failed rule %q", ErrInvalidInput, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// Language returns the language used for prompt construction and code fences.
// An explicit hint always wins over detection.
func (r *ReviewRequest) Language() string {
	if r.LanguageHint != "" {
		return r.LanguageHint
	}
	return DetectLanguage(r.CodeSnippet)
}

// FeedbackItem is the structured, four-field empathetic rewrite of exactly one
// original comment. It is immutable after creation; the report assembler is
// its only consumer.
type FeedbackItem struct {
	OriginalComment    string   `json:"original_comment"`
	PositiveRephrasing string   `json:"positive_rephrasing"`
	Rationale          string   `json:"rationale"`
	SuggestedCode      string   `json:"suggested_code"`
	Resources          []string `json:"resources,omitempty"`
	Severity           Severity `json:"severity"`

	// Degraded marks an item whose generation failed after retry. The
	// rationale then carries the best-effort raw text so the reader never
	// gets a silently wrong result.
	Degraded bool `json:"degraded,omitempty"`
}

// ReviewReport aggregates one FeedbackItem per input comment, in input order.
// Invariant: len(Items) equals len(ReviewRequest.ReviewComments) and each
// item's OriginalComment equals the corresponding input comment verbatim.
type ReviewReport struct {
	Items          []FeedbackItem `json:"items"`
	OverallSummary string         `json:"overall_summary,omitempty"`
	Language       string         `json:"language,omitempty"`
}
