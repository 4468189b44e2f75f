package rest

import (
	"net/http"

	"github.com/heartmarshall/review-relay/internal/transport/middleware"
)

// NewRouter registers every endpoint. limit wraps the state-changing POST
// routes; cross-cutting middleware is applied by the caller.
func NewRouter(rh *ReviewHandler, hh *HealthHandler, limit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()
	limited := func(h http.HandlerFunc) http.Handler { return limit(h) }

	mux.Handle("POST /{$}", limited(rh.Create))
	mux.Handle("POST /create", limited(rh.Create))
	mux.HandleFunc("GET /edit/{id}", rh.EditPage)
	mux.HandleFunc("GET /edit", rh.DraftPage)
	mux.HandleFunc("POST /edit", rh.DraftPage)
	mux.Handle("POST /submit/{id}", limited(rh.Submit))
	mux.HandleFunc("GET /status/{id}", rh.Status)
	mux.Handle("POST /webhook", limited(rh.Webhook))
	mux.Handle("POST /webhook/action", limited(rh.WebhookAction))
	mux.Handle("POST /api/rewrite", limited(rh.Rewrite))

	mux.HandleFunc("GET /{$}", hh.Info)
	mux.HandleFunc("GET /live", hh.Live)
	mux.HandleFunc("GET /ready", hh.Ready)
	mux.HandleFunc("GET /health", hh.Health)

	return mux
}
