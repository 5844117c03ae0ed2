package app

import (
	"context"
	"net/http"
	"time"

	"movieapi/internal/config"
	"movieapi/internal/httpx"
	"movieapi/internal/movie"
	"movieapi/internal/profile"
)

// NewRouter returns the API handler with the middleware chain applied. ctx
// bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, a *App, cfg config.Config) http.Handler {
	movieHandler := movie.NewHTTPHandler(a.Movies)
	profileHandler := profile.NewHTTPHandler(a.Profiles)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := a.Ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /v1/library/movies", movieHandler.List)
	router.HandleFunc("GET /v1/library/movies/{id}", movieHandler.GetByID)
	router.HandleFunc("GET /v1/library/genres", movieHandler.Genres)
	router.HandleFunc("GET /v1/library/sort-options", movieHandler.SortOptions)

	router.HandleFunc("GET /v1/profiles/{handle}", profileHandler.Get)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.MethodMiddleware(http.MethodGet, http.MethodHead),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		rateLimiter.Middleware,
	)
}
