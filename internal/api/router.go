// Package api wires the HTTP surface: routes, middleware, and rate
// limiting around the assistant endpoint.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/youqu117/Bookkeeping/internal/api/handlers"
	"github.com/youqu117/Bookkeeping/internal/api/middleware"
	"github.com/youqu117/Bookkeeping/internal/assistant"
	"github.com/youqu117/Bookkeeping/internal/store"
)

// assistantRate bounds model calls: one request per second, small burst.
var assistantRate = rate.NewLimiter(rate.Every(time.Second), 5)

// NewRouter builds the full application router.
func NewRouter(a *assistant.Assistant, s store.Store, apiKey string, log zerolog.Logger) http.Handler {
	assistantHandler := handlers.NewAssistantHandler(a, s, apiKey, log)
	transactionsHandler := handlers.NewTransactionsHandler(s, log)
	tagsHandler := handlers.NewTagsHandler(s, log)
	accountsHandler := handlers.NewAccountsHandler(s, log)

	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		MaxAge:         3600,
	}))

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.RateLimit(assistantRate)).Post("/assistant", assistantHandler.Process)

		r.Get("/transactions", transactionsHandler.List)
		r.Post("/transactions", transactionsHandler.Create)

		r.Get("/tags", tagsHandler.List)
		r.Post("/tags", tagsHandler.Create)
		r.Delete("/tags/{id}", tagsHandler.Delete)

		r.Get("/accounts", accountsHandler.List)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return r
}
