package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TokenPulse/internal/domain/repository"
	"TokenPulse/pkg/config"
	xhttp "TokenPulse/pkg/http"
	applogger "TokenPulse/pkg/logger"
	"TokenPulse/pkg/queue"

	"github.com/redis/go-redis/v9"
)

// App encapsulates the application lifecycle: HTTP server, forecast queue
// workers and the score event publisher.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	handler    xhttp.Handler
	queue      *queue.RedisQueue
	publisher  repository.ScorePublisher
	redis      *redis.Client
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	handler xhttp.Handler,
	q *queue.RedisQueue,
	publisher repository.ScorePublisher,
	redisClient *redis.Client,
) *App {
	return &App{
		cfg:       cfg,
		log:       log,
		handler:   handler,
		queue:     q,
		publisher: publisher,
		redis:     redisClient,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	// With events enabled the Kafka publisher doubles as the sink for
	// aggregated log batches.
	if a.cfg.Events.Enabled {
		if pub, ok := a.publisher.(applogger.Publisher); ok {
			a.log.AddCollector(&applogger.CollectionConfig{
				TimeInterval:   30 * time.Second,
				CountThreshold: 100,
				Topic:          a.cfg.Events.Topic + ".logs",
				Publisher:      pub,
			})
		}
	}

	// The queue powers forecast tasks only. If the broker is down the
	// process still serves scores; every forecast takes the fallback price.
	if err := a.queue.Start(); err != nil {
		a.log.Warn("queue start failed, forecasts degrade to fallback", applogger.Error(err))
	} else {
		a.log.Info("forecast queue started", applogger.Int("workers", a.cfg.Queue.Workers))
	}

	serverOpts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.log),
	}
	if a.cfg.Metrics.Enabled {
		serverOpts = append(serverOpts, xhttp.WithMetrics(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handler, serverOpts...)

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}
	a.log.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown stops the services in dependency order: HTTP first so no new
// requests arrive, then workers, then the outbound clients.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if err := a.queue.Stop(ctx); err != nil {
		a.log.Warn("queue stop error", applogger.Error(err))
	}

	// Collector before publisher: the final batch still needs a live sink.
	a.log.RemoveCollector()

	if err := a.publisher.Close(); err != nil {
		a.log.Warn("publisher close error", applogger.Error(err))
	}

	if err := a.redis.Close(); err != nil {
		a.log.Warn("redis close error", applogger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
