// Package handler provides the HTTP handlers for the review API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/core"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/review"
)

const maxRequestBody = 1 << 20 // 1 MiB of code and comments is plenty

// ReviewHandler accepts review requests and returns the rendered report.
type ReviewHandler struct {
	svc    *review.Service
	logger *slog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(svc *review.Service, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, logger: logger}
}

type reviewResponse struct {
	ID           string `json:"id"`
	Language     string `json:"language,omitempty"`
	CommentCount int    `json:"comment_count"`
	Markdown     string `json:"markdown"`
}

// Handle processes a review submission. The response format follows the
// Accept header: JSON by default, raw Markdown for text/markdown.
func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req core.ReviewRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Debug("rejecting malformed review request", "error", err)
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Run(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.Error("review session failed", "error", err)
			http.Error(w, "review failed", http.StatusInternalServerError)
		}
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/markdown") {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = fmt.Fprint(w, result.Markdown)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reviewResponse{
		ID:           result.ID,
		Language:     result.Report.Language,
		CommentCount: len(result.Report.Items),
		Markdown:     result.Markdown,
	})
}
