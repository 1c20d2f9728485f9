// Package router sets up the HTTP routes and middleware chains: the public
// JSON API, the derived documents, and the webhook group with its own
// auth stack.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"richgradstudent/internal/handlers"
	"richgradstudent/internal/middleware"
)

// subscribe endpoint limits: a human signs up once, a spam script doesn't.
const (
	subscribeLimit  = 5
	subscribeWindow = time.Minute
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned RateLimiter must be stopped on
// shutdown.
func New(api *handlers.API, webhookSecret string) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", api.Health)

	// Derived public documents.
	r.Get("/feed.xml", api.FeedXML)
	r.Get("/llms.txt", api.LLMsTxt)

	limiter := middleware.NewRateLimiter(subscribeLimit, subscribeWindow)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", api.Search)
		r.Get("/content/{type}/{slug}", api.GetContent)
		r.Get("/programs/{slug}", api.GetProgram)
		r.Get("/recommendations", api.Recommendations)
		r.Post("/calculator", api.Calculator)

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/subscribe", api.Subscribe)
		})
		r.Post("/unsubscribe", api.Unsubscribe)

		// CMS sync — shared-secret protected.
		r.Group(func(r chi.Router) {
			r.Use(middleware.WebhookAuth(webhookSecret))
			r.Post("/webhooks/content", api.ContentSync)
		})
	})

	return r, limiter
}
