package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/review-relay/internal/adapter/memory/editrequest"
	"github.com/heartmarshall/review-relay/internal/adapter/provider/llm"
	"github.com/heartmarshall/review-relay/internal/adapter/webhook"
	"github.com/heartmarshall/review-relay/internal/config"
	"github.com/heartmarshall/review-relay/internal/service/review"
	"github.com/heartmarshall/review-relay/internal/transport/middleware"
	"github.com/heartmarshall/review-relay/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires every
// component and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a := New(cfg, logger, clockwork.NewRealClock())

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return a.Serve(ctx, ln)
}

// App owns the long-lived components of one relay process.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *editrequest.Store
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New wires store, limiter, outbound adapters, service and HTTP handlers.
func New(cfg *config.Config, logger *slog.Logger, clock clockwork.Clock) *App {
	if cfg.Webhook.UsesPlaceholders() {
		logger.Warn("webhook URL is still the documented placeholder; decisions will not reach the workflow",
			slog.String("edit_url", cfg.Webhook.EditURL),
			slog.String("action_url", cfg.Webhook.ActionURL),
		)
	}
	if !cfg.Rewrite.Enabled() {
		logger.Warn("no AI provider key configured; rewrite requests will be rejected")
	}

	store := editrequest.New(clock, cfg.Requests.TTL, logger)
	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, logger)
	forwarder := webhook.NewForwarder(cfg.Webhook.EditURL, cfg.Webhook.ActionURL, cfg.Webhook.Timeout, logger)
	rewriter := llm.NewRewriter(cfg.Rewrite, logger)

	svc := review.NewService(logger, store, forwarder, rewriter, clock, review.Config{
		Source:         cfg.Webhook.Source,
		WebhookTimeout: cfg.Webhook.Timeout,
		RewriteTimeout: cfg.Rewrite.Timeout,
	})

	mux := rest.NewRouter(
		rest.NewReviewHandler(svc, cfg.Server.BaseURL, cfg.Server.MaxBodyBytes, logger),
		rest.NewHealthHandler(store, rest.HealthOptions{
			Version:            BuildVersion(),
			WebhooksConfigured: !cfg.Webhook.UsesPlaceholders(),
			RewriteEnabled:     cfg.Rewrite.Enabled(),
		}),
		limiter.Limit(),
	)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(mux)

	return &App{
		cfg:     cfg,
		log:     logger,
		store:   store,
		limiter: limiter,
		handler: handler,
	}
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Serve runs the HTTP server on ln together with the store and limiter
// sweepers. It returns after ctx is cancelled and the server has drained,
// or as soon as any of them fails.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.log.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.store.Run(gctx, a.cfg.Requests.SweepInterval)
	})

	g.Go(func() error {
		return a.limiter.Run(gctx, a.cfg.RateLimit.SweepInterval)
	})

	err := g.Wait()
	a.log.Info("application stopped")
	return err
}
