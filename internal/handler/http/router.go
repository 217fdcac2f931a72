// Package http wires the storefront's HTTP surface: session-scoped cart and
// wishlist state, the read-only catalog, and the style advisor proxy.
package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/advisor"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/catalog"
	"github.com/Nwachukwuchinedu/Creative-Stitches/internal/store"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/health"
	"github.com/Nwachukwuchinedu/Creative-Stitches/pkg/middleware"
)

// RouterConfig bundles the dependencies the router needs.
type RouterConfig struct {
	Stores      *store.Manager
	Catalog     *catalog.Provider
	Advisor     *advisor.Client
	Health      *health.Handler
	Logger      *slog.Logger
	CORS        middleware.CORSConfig
	Environment string
}

// NewRouter builds the chi router with the full middleware chain and all
// API routes mounted under /api/v1.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Compress(5))
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)
	cartHandler := NewCartHandler(cfg.Stores, cfg.Catalog, cfg.Logger)
	wishlistHandler := NewWishlistHandler(cfg.Stores, cfg.Catalog, cfg.Logger)
	advisorHandler := NewAdvisorHandler(cfg.Advisor, cfg.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		catalogHandler.Routes(api)
		advisorHandler.Routes(api)

		api.Group(func(session chi.Router) {
			session.Use(RequireSession)
			cartHandler.Routes(session)
			wishlistHandler.Routes(session)
		})
	})

	return r
}
