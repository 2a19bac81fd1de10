package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the full API under /api.
func NewRouter(store *Store, tokens *TokenIssuer) *chi.Mux {
	h := NewHandler(store, tokens)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "Authorization"},
	}))
	mux.Use(rejectBadTokens(tokens))

	mux.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/register", h.register)
		})

		r.Get("/profiles/{id}", h.getProfile)
		r.Get("/jobs", h.listJobs)
		r.Get("/jobs/{id}", h.getJob)
		r.Post("/jobs", h.createJob)
		r.Post("/jobs/{id}/apply", h.applyToJob)
		r.Post("/jobs/{id}/feedback", h.completeJob)
		r.Get("/volunteers/{id}/applications", h.listVolunteerApplications)
		r.Get("/requesters/{id}/jobs", h.listRequesterJobs)
	})

	return mux
}

// rejectBadTokens lets anonymous requests through (the read endpoints are
// public) but refuses requests presenting a token that does not verify.
func rejectBadTokens(tokens *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth != "" {
				raw, ok := strings.CutPrefix(auth, "Bearer ")
				if !ok {
					writeError(w, http.StatusUnauthorized, "malformed authorization header")
					return
				}
				if _, err := tokens.Verify(raw); err != nil {
					writeError(w, http.StatusUnauthorized, "invalid token")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
