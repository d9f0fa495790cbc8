package main

import "github.com/salvatoreOm/empathic-code-reviewer/internal/review"

// Indicates that the review pipeline has been initialized.
type serviceReadyMsg struct {
	svc     *review.Service
	genName string
	err     error
}

// Carries the rendered report of a finished session.
type reportReadyMsg struct {
	markdown string
	rendered string
	err      error
}
