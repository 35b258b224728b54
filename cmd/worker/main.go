package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TokenPulse/internal/forecast"
	"TokenPulse/pkg/config"
	"TokenPulse/pkg/logger"
	"TokenPulse/pkg/queue"

	"github.com/redis/go-redis/v9"
)

// Dedicated forecast worker. The API process runs its own workers too; this
// binary exists to scale task throughput independently of the HTTP tier.
func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	lgr, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	q := queue.NewRedisConsumer(lgr, &queue.QueueConfig{
		Workers:    cfg.Queue.Workers,
		RetryLimit: cfg.Queue.RetryLimit,
		RetryDelay: cfg.Queue.RetryDelay,
		ResultTTL:  cfg.Queue.ResultTTL,
	}, client,
		[]queue.Job{forecast.NewJob(forecast.NewEngine())},
		queue.WithKeyPrefix(cfg.Queue.KeyPrefix),
	)

	if err := q.Start(); err != nil {
		log.Fatalf("queue start failed: %v", err)
	}
	lgr.Info("forecast worker started", logger.Int("workers", cfg.Queue.Workers))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	lgr.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := q.Stop(ctx); err != nil {
		lgr.Warn("queue stop error", logger.Error(err))
	}
	if err := client.Close(); err != nil {
		lgr.Warn("redis close error", logger.Error(err))
	}
}
