// Package events publishes completed scoring runs to the Kafka stream.
package events

import (
	"context"
	"fmt"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/config"
	"TokenPulse/pkg/kafka"
)

// KafkaPublisher writes score events to the configured topic, keyed by
// token symbol so one token's events stay ordered on a partition. It also
// serves as the log collector's publisher, flushing aggregated error
// summaries through the same producer.
type KafkaPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewKafkaPublisher(cfg *config.Config) (*KafkaPublisher, error) {
	producer, err := kafka.NewProducer(
		kafka.WithBrokers(cfg.Events.Brokers),
		kafka.WithCompression(cfg.Events.Compression),
		kafka.WithRequiredAcks(cfg.Events.RequiredAcks),
		kafka.WithBatchSize(cfg.Events.Producer.BatchSize),
		kafka.WithBatchBytes(cfg.Events.Producer.BatchBytes),
		kafka.WithBatchTimeout(cfg.Events.Producer.Linger),
		kafka.WithTimeouts(cfg.Events.Producer.WriteTimeout, cfg.Events.Producer.ReadTimeout),
		kafka.WithMaxAttempts(cfg.Events.Producer.MaxAttempts),
		kafka.WithAsync(cfg.Events.Producer.Async),
		kafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("events producer: %w", err)
	}

	return &KafkaPublisher{producer: producer, topic: cfg.Events.Topic}, nil
}

// PublishScore emits one completed scoring run.
func (p *KafkaPublisher) PublishScore(ctx context.Context, ev *models.ScoreEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(ev.Symbol), ev)
}

// PublishMessage satisfies the log collector's publisher interface.
func (p *KafkaPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}

// Close flushes and closes the underlying producer.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher stands in when event streaming is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishScore(ctx context.Context, ev *models.ScoreEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
