// ABOUTME: Router construction with CORS, logging and rate limiting middleware
// ABOUTME: Wires handlers and the optional metrics endpoint onto chi

package api

import (
	"net/http"
	"time"

	"football-news-api/api/middleware"
	"football-news-api/core/interfaces"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

// Config holds configuration for the API router.
type Config struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window per client
	RateWindow time.Duration // rate limit window
	Metrics    http.Handler  // optional /metrics handler
}

// Route is implemented by handlers that mount themselves on the router.
type Route interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter creates the router with middleware and registers the routes.
func NewRouter(cfg Config, routes ...Route) chi.Router {
	router := chi.NewRouter()

	router.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLogging(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimit(limiter))
	}

	for _, route := range routes {
		route.RegisterRoutes(router)
	}

	if cfg.Metrics != nil {
		router.Method("GET", "/metrics", cfg.Metrics)
	}

	return router
}
