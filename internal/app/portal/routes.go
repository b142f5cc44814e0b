package portal

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	dashboardstate "github.com/magabrotheeeer/research-portal/internal/http/handlers/dashboard/state"
	"github.com/magabrotheeeer/research-portal/internal/http/handlers/health"
	dashboardpage "github.com/magabrotheeeer/research-portal/internal/http/handlers/pages/dashboard"
	"github.com/magabrotheeeer/research-portal/internal/http/handlers/pages/home"
	planspage "github.com/magabrotheeeer/research-portal/internal/http/handlers/pages/plans"
	selectform "github.com/magabrotheeeer/research-portal/internal/http/handlers/pages/selectplan"
	"github.com/magabrotheeeer/research-portal/internal/http/handlers/plans/list"
	"github.com/magabrotheeeer/research-portal/internal/http/handlers/plans/selectplan"
	"github.com/magabrotheeeer/research-portal/internal/http/middlewarectx"
)

// RegisterRoutes регистрирует страницы, JSON API, метрики и документацию.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	// Страницы
	r.Get("/", home.New(logger, deps.Renderer, deps.Hero).ServeHTTP)
	r.Get("/subscription", planspage.New(logger, deps.Renderer, deps.Catalog).ServeHTTP)
	r.Get("/dashboard/{user}", dashboardpage.New(logger, deps.Renderer, deps.Source).ServeHTTP)
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
		r.Post("/plans/select", selectform.New(logger, deps.Catalog, deps.OnSelect).ServeHTTP)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger).ServeHTTP)
		r.Get("/plans", list.New(logger, deps.Catalog).ServeHTTP)
		r.Get("/dashboard/{user}", dashboardstate.New(logger, deps.Source).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
			r.Post("/plans/select", selectplan.New(logger, deps.Catalog, deps.OnSelect).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
