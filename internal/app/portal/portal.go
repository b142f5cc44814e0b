// Package portal собирает HTTP-приложение витрины исследований.
package portal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/research-portal/internal/cache"
	"github.com/magabrotheeeer/research-portal/internal/catalog"
	"github.com/magabrotheeeer/research-portal/internal/config"
	"github.com/magabrotheeeer/research-portal/internal/demo"
	"github.com/magabrotheeeer/research-portal/internal/lib/sl"
	"github.com/magabrotheeeer/research-portal/internal/metrics"
	"github.com/magabrotheeeer/research-portal/internal/models"
	"github.com/magabrotheeeer/research-portal/internal/rabbitmq"
	"github.com/magabrotheeeer/research-portal/internal/selection"
	"github.com/magabrotheeeer/research-portal/internal/session"
	"github.com/magabrotheeeer/research-portal/internal/view"
)

type App struct {
	server  *http.Server
	logger  *slog.Logger
	closers []io.Closer
}

// Deps зависимости маршрутов.
type Deps struct {
	Catalog  *catalog.Catalog
	Renderer Renderer
	Source   session.Source
	OnSelect selection.Handler
	Hero     models.HeroContent
	Limiter  *rate.Limiter
	Gatherer prometheus.Gatherer
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.portal.New"

	app := &App{logger: logger}

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	source, err := app.newSource(ctx, cfg)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	onSelect, err := app.newSelection(cfg)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Catalog:  catalog.Default(),
		Renderer: Counted(renderer, m.PageRenders),
		Source:   source,
		OnSelect: selection.Counted(onSelect, m.PlanSelections),
		Hero: models.HeroContent{
			Title:                  cfg.Hero.Title,
			Description:            cfg.Hero.Description,
			BrowseReportsLabel:     cfg.Hero.BrowseReportsLabel,
			SubscriptionPlansLabel: cfg.Hero.SubscriptionPlansLabel,
			BackgroundImage:        cfg.Hero.BackgroundImage,
		},
		Limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		Gatherer: prometheus.DefaultGatherer,
	})

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// demoSnapshotTTL срок жизни демо-снимков, записанных в Redis.
const demoSnapshotTTL = 24 * time.Hour

func (a *App) newSource(ctx context.Context, cfg *config.Config) (session.Source, error) {
	if cfg.Demo && cfg.AddressRedis == "" {
		a.logger.Warn("demo mode: dashboard snapshots are served from built-in fixtures")
		return session.NewStatic(demo.Dashboards())
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, cacheRedis)

	if cfg.Demo {
		a.logger.Warn("demo mode: seeding dashboard snapshots into redis", slog.String("address", cfg.AddressRedis))
		if err := session.Seed(ctx, cacheRedis, demo.Dashboards(), demoSnapshotTTL); err != nil {
			return nil, err
		}
	}
	return session.NewRedis(cacheRedis), nil
}

func (a *App) newSelection(cfg *config.Config) (selection.Handler, error) {
	logSink := selection.Logger(a.logger)
	if cfg.Sink != config.SelectionSinkAMQP {
		return logSink, nil
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn)

	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, ch)

	return selection.Chain(
		logSink,
		selection.Publisher(a.logger, ch, cfg.Exchange, cfg.RoutingKey),
	), nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает ресурсы в обратном порядке открытия.
func (a *App) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Error("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
}
