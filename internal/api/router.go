package api

import (
	"log/slog"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/finance"
	"github.com/iammorganparry/seans/internal/store"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	st *store.Store,
	ed *editor.Editor,
	b *board.Board,
	agg *finance.Aggregator,
	currency string,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))
	r.Use(Serialize(&sync.Mutex{}))

	healthH := NewHealthHandler(st)
	sessionH := NewSessionHandler(ed, b, logger)
	financeH := NewFinanceHandler(agg, currency)

	r.Get("/health", healthH.Health)

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", sessionH.List)
		r.Post("/", sessionH.Create)
		r.Get("/{id}", sessionH.Get)
		r.Patch("/{id}", sessionH.Update)
	})

	r.Get("/finance", financeH.Summary)

	return r
}
