package api

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed web/index.html
var indexHTML []byte

// NewRouter wires the API endpoints and static assets onto a chi.Router.
// Middleware (CORS, logging, rate limiting) is attached by the caller.
func NewRouter(handler *Handler, publicDir string) http.Handler {
	r := chi.NewRouter()

	r.Get("/", serveIndex)
	r.Handle("/public/*", http.StripPrefix("/public/", http.FileServer(http.Dir(publicDir))))

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", handler.CreateUser)
		r.Get("/", handler.ListUsers)

		r.Route("/{id}", func(r chi.Router) {
			r.Post("/exercises", handler.AddExercise)
			r.Get("/logs", handler.GetLog)
		})
	})

	return r
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}
