package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/httpapi"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const healthTimeout = 2 * time.Second

var errRouteNotFound = domain.NewNotFound("route not found")

func (a *App) newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(otelhttp.NewMiddleware("tripsit-api",
		otelhttp.WithTracerProvider(a.Obs.TracerProvider),
	))
	r.Use(httpapi.CORS(a.Config.HTTP.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpapi.WriteError(w, req, nil, errRouteNotFound)
	})

	r.Get("/healthz", a.health)
	if a.Config.Observability.MetricsAddress == "" {
		r.Handle("/metrics", a.metricsHandler())
	}

	limiter := httpapi.NewIPRateLimiter(rate.Limit(a.Config.HTTP.RateLimit), a.Config.HTTP.RateBurst)
	r.Route("/api", func(api chi.Router) {
		api.Use(httpapi.RateLimit(limiter))
		api.Use(a.Auth.Middleware)
		a.Modules.Mount(api)
	})
	return r
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	if err := a.DB.PingContext(ctx); err != nil {
		a.Obs.Logger.WarnContext(ctx, "Health check failed", "error", err)
		httpapi.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler() http.Handler {
	return promhttp.HandlerFor(a.Obs.Registry, promhttp.HandlerOpts{Registry: a.Obs.Registry})
}
