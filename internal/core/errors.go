package core

import "errors"

// Error kinds for the review pipeline. Input and configuration errors are
// fatal for a session; backend and parse errors are recoverable per comment
// (one retry, then a degraded FeedbackItem).
var (
	ErrInvalidInput  = errors.New("invalid review request")
	ErrConfiguration = errors.New("invalid generator configuration")
	ErrBackend       = errors.New("generation backend failure")
	ErrParse         = errors.New("malformed generation reply")
)
