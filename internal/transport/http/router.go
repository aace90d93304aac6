package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/chatwith-notifications/internal/application/notification"
	"github.com/chatwith-notifications/internal/config"
	"github.com/chatwith-notifications/internal/observability/metrics"
	"github.com/chatwith-notifications/internal/transport/http/handler"
	appmiddleware "github.com/chatwith-notifications/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.RequestLogger)
	r.Use(appmiddleware.Recover)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(corsOptions(cfg)))

	r.MethodNotAllowed(handler.MethodNotAllowed)
	r.NotFound(handler.NotFound)

	notifSvc := notification.NewService(deps.NotificationRepo, notification.Options{
		StoreTimeout:   cfg.StoreTimeout,
		MaxRetries:     cfg.StoreMaxRetries,
		RetryBaseDelay: cfg.StoreRetryBaseDelay,
	})

	healthH := handler.NewHealthHandler()
	notifH := handler.NewNotificationHandler(notifSvc)
	specH := handler.NewSpecHandler(cfg.OpenAPIPaths)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthH.Check)
		r.Post("/notifications", notifH.Create)
		r.Options("/notifications", handler.Preflight)
		r.Get("/notifications/get", notifH.List)
		r.Options("/notifications/get", handler.Preflight)
		r.Get("/openapi", specH.Get)
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

// corsOptions builds the CORS policy from config. An empty allow-list means
// deny: go-chi/cors falls back to "*" when AllowedOrigins is empty, so the
// deny case is expressed through AllowOriginFunc instead.
func corsOptions(cfg *config.Config) cors.Options {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           300,
	}
	if len(cfg.AllowedOrigins) == 0 {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
		return opts
	}
	opts.AllowedOrigins = cfg.AllowedOrigins
	return opts
}
