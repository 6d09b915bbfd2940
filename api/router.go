package api

import (
	"harborline_server/api/health"
	"harborline_server/api/middleware"
	"harborline_server/config"
	"harborline_server/database"
	"harborline_server/handling"
	"harborline_server/services"
	"harborline_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	chiware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App assembles the HTTP router. The database handle is injected so
// callers own its lifecycle; nothing here reaches for process globals.
func App(cfg *structs.Config, db *database.DB) chi.Router {
	r := chi.NewRouter()

	logLevel := gecho.ParseLogLevel(config.GetLogLevel())
	mwLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false), gecho.WithLogLevel(logLevel)))
	standardLogger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(true), gecho.WithLogLevel(logLevel)))

	sm := services.NewServiceManager(standardLogger, cfg, db)
	mw := middleware.NewMiddleware(cfg, mwLogger)

	// Core infra
	r.Use(chiware.RequestID)
	r.Use(chiware.RealIP)
	r.Use(chiware.Recoverer)

	// Limits & security
	r.Use(mw.BodyLimit(10 * 1024 * 1024))
	r.Use(mw.SecurityHeaders())

	// Observability
	r.Use(gecho.Handlers.CreateLoggingMiddleware(mwLogger))
	r.Use(middleware.MetricsMiddleware)

	// CORS (must run before the routes)
	r.Use(mw.SetupCORS().Handler)

	// Set before mounting /api so the subrouter inherits it.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handling.Error(w, http.StatusNotFound, "Not found")
	})

	r.Route("/api", func(r chi.Router) {
		NewRouterManager(standardLogger, sm).RegisterRoutes(r)
	})

	health.RegisterMetrics()
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		handling.JSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the Harborline API",
		})
	})

	return r
}
