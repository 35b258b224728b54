package di

import (
	"fmt"

	"TokenPulse/internal/domain/repository"
	domsvc "TokenPulse/internal/domain/service"
	"TokenPulse/internal/forecast"
	"TokenPulse/internal/handler/api"
	"TokenPulse/internal/scoring"
	"TokenPulse/internal/service/backend"
	"TokenPulse/internal/service/events"
	"TokenPulse/internal/service/marketdata"
	"TokenPulse/internal/usecase"
	"TokenPulse/pkg/config"
	"TokenPulse/pkg/logger"
	pkgmetrics "TokenPulse/pkg/metrics"
	"TokenPulse/pkg/queue"
	"TokenPulse/pkg/server"

	"github.com/redis/go-redis/v9"
)

// ProvideLogger creates the process logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// ProvideRedisClient creates the Redis client backing the task queue.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return pkgmetrics.New()
}

// ProvideQueue creates the Redis task queue with the forecast job
// registered, so this process both submits and works forecast tasks.
func ProvideQueue(cfg *config.Config, log *logger.Logger, client *redis.Client) *queue.RedisQueue {
	q := queue.NewRedisQueue(log, &queue.QueueConfig{
		Workers:    cfg.Queue.Workers,
		RetryLimit: cfg.Queue.RetryLimit,
		RetryDelay: cfg.Queue.RetryDelay,
		ResultTTL:  cfg.Queue.ResultTTL,
	}, client, queue.ModeProducerConsumer, queue.WithKeyPrefix(cfg.Queue.KeyPrefix))

	q.RegisterJob(forecast.NewJob(forecast.NewEngine()))
	return q
}

// ProvideForecaster wraps the queue-backed forecaster with the fallback
// price so a failed forecast never fails a scoring request.
func ProvideForecaster(cfg *config.Config, q *queue.RedisQueue, log *logger.Logger, metrics repository.Metrics) domsvc.Forecaster {
	inner := forecast.NewQueueForecaster(q, cfg.Queue.ResultTimeout)
	return forecast.NewWithFallback(inner, cfg.Scoring.FallbackPrice, log, metrics)
}

// ProvideBackendGateway creates the data-plane backend client.
func ProvideBackendGateway(cfg *config.Config, log *logger.Logger, metrics repository.Metrics) repository.BackendGateway {
	return backend.NewClient(cfg, log, metrics)
}

// ProvideMarketData creates the historical price client.
func ProvideMarketData(cfg *config.Config, log *logger.Logger, metrics repository.Metrics) repository.MarketDataProvider {
	return marketdata.NewClient(cfg, log, metrics)
}

// ProvideScorePublisher creates the Kafka score publisher, or a no-op when
// event publishing is disabled.
func ProvideScorePublisher(cfg *config.Config) (repository.ScorePublisher, error) {
	if !cfg.Events.Enabled {
		return events.NoopPublisher{}, nil
	}
	return events.NewKafkaPublisher(cfg)
}

// ProvideScoringEngine creates the factor scoring engine.
func ProvideScoringEngine(log *logger.Logger, metrics repository.Metrics) *scoring.Engine {
	return scoring.NewEngine(scoring.SystemRand{}, log, metrics)
}

// ProvideScoreService creates the scoring use case.
func ProvideScoreService(
	gateway repository.BackendGateway,
	market repository.MarketDataProvider,
	forecaster domsvc.Forecaster,
	publisher repository.ScorePublisher,
	engine *scoring.Engine,
	metrics repository.Metrics,
	log *logger.Logger,
) *usecase.ScoreService {
	return usecase.NewScoreService(gateway, market, forecaster, publisher, engine, metrics, log)
}

// ProvideScoreHandler creates the HTTP handler.
func ProvideScoreHandler(log *logger.Logger, svc *usecase.ScoreService, q *queue.RedisQueue) *api.ScoreHandler {
	return api.NewScoreHandler(log, svc, q)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler *api.ScoreHandler,
	q *queue.RedisQueue,
	publisher repository.ScorePublisher,
	client *redis.Client,
) *server.App {
	return server.New(cfg, log, handler, q, publisher, client)
}
