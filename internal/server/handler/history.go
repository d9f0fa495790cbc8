package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/storage"
)

// HistoryHandler serves previously generated reports when persistence is
// enabled.
type HistoryHandler struct {
	store  storage.Store
	logger *slog.Logger
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(store storage.Store, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, logger: logger}
}

// List returns the most recent reports, newest first.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.store.ListReports(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list reports", "error", err)
		http.Error(w, "failed to list reports", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(recs)
}

// Get returns one stored report by id.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.store.GetReport(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrReportNotFound) {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to fetch report", "id", id, "error", err)
		http.Error(w, "failed to fetch report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rec)
}
