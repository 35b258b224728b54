package repository

import (
	"context"

	"TokenPulse/internal/domain/models"
)

// BackendGateway fetches scoring inputs from the data-plane backend. Every
// method absorbs upstream failure: a nil (or empty) result is the absence
// signal, never an error.
type BackendGateway interface {
	FetchMacro(ctx context.Context) models.MacroSnapshot
	FetchSentiment(ctx context.Context, symbol string) *models.SentimentSnapshot
	FetchFilings(ctx context.Context) models.FilingsByFiler
	FetchNews(ctx context.Context) []models.NewsArticle
}

// MarketDataProvider fetches historical prices for an asset. An empty
// series means history was unavailable (including a missing API key).
type MarketDataProvider interface {
	HistoricalPrices(ctx context.Context, assetID string) models.PriceSeries
}

// ScorePublisher emits score events to the downstream stream.
type ScorePublisher interface {
	PublishScore(ctx context.Context, ev *models.ScoreEvent) error
	Close() error
}

type Metrics interface {
	RecordScore(recommendation string)
	RecordUpstreamFailure(endpoint string)
	RecordScorerFault(factor string)
	RecordForecastFallback(reason string)
	RecordPriceTarget(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
