package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/vocab-api/internal/api"
	apimiddleware "github.com/phrazzld/vocab-api/internal/api/middleware"
	"github.com/phrazzld/vocab-api/internal/api/shared"
)

// newRouter assembles the HTTP routes and middleware stack.
func newRouter(handler *api.SessionHandler, db *sql.DB) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	r.Get("/health", healthHandler(db))

	r.Route("/api", func(r chi.Router) {
		r.Get("/learn", handler.GetLearnCard)
		r.Post("/review", handler.SubmitReview)

		r.Route("/session", func(r chi.Router) {
			r.Post("/reveal", handler.RevealAnswer)
			r.Post("/skip", handler.SkipCard)
			r.Post("/reset", handler.ResetSession)
		})
	})

	return r
}

// healthHandler reports liveness, including database reachability when one
// is configured.
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}

		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				status["status"] = "degraded"
				status["database"] = "unreachable"
				shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}

		shared.RespondWithJSON(w, r, http.StatusOK, status)
	}
}
