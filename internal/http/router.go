package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/cosigner/internal/auth"
	"github.com/MrJamesThe3rd/cosigner/internal/http/application"
	"github.com/MrJamesThe3rd/cosigner/internal/http/document"
	"github.com/MrJamesThe3rd/cosigner/internal/http/draft"
	"github.com/MrJamesThe3rd/cosigner/internal/http/review"
	"github.com/MrJamesThe3rd/cosigner/internal/metrics"
)

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Timeout        time.Duration
	// Health reports whether the backing stores are reachable.
	Health func(ctx context.Context) error
}

func New(
	opts Options,
	draftV1 *draft.Handler,
	documentsV1 *document.Handler,
	applicationsV1 *application.Handler,
	reviewV1 *review.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "If-Match"},
		ExposedHeaders:   []string{"ETag"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if opts.Health != nil {
			if err := opts.Health(r.Context()); err != nil {
				http.Error(w, "unhealthy", http.StatusServiceUnavailable)
				return
			}
		}

		w.Write([]byte("ok"))
	})
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(opts.JWTSecret))

		r.Route("/draft", func(r chi.Router) {
			if opts.Timeout > 0 {
				r.Use(middleware.Timeout(opts.Timeout))
			}

			draftV1.Routes(r)
		})

		// uploads stream to the provider under its own timeout
		r.Route("/documents", documentsV1.Routes)

		r.Route("/applications", func(r chi.Router) {
			if opts.Timeout > 0 {
				r.Use(middleware.Timeout(opts.Timeout))
			}

			applicationsV1.Routes(r)
		})

		r.Route("/review/applications", func(r chi.Router) {
			r.Use(auth.RequireRole(auth.RoleReviewer))
			r.Use(middleware.AllowContentType("application/json"))

			if opts.Timeout > 0 {
				r.Use(middleware.Timeout(opts.Timeout))
			}

			reviewV1.Routes(r)
		})
	})

	return router
}
