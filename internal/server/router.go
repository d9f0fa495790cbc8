package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/salvatoreOm/empathic-code-reviewer/internal/review"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/server/handler"
	"github.com/salvatoreOm/empathic-code-reviewer/internal/storage"
)

// NewRouter creates and configures a new HTTP router with middleware and API
// routes. Generation can take a while per comment, so the request timeout is
// generous.
func NewRouter(svc *review.Service, store storage.Store, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Minute))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		reviewHandler := handler.NewReviewHandler(svc, logger)
		r.Post("/review", reviewHandler.Handle)

		if store != nil {
			historyHandler := handler.NewHistoryHandler(store, logger)
			r.Get("/reports", historyHandler.List)
			r.Get("/reports/{id}", historyHandler.Get)
		}
	})

	return r
}
