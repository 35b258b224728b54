package usecase

import (
	"context"
	"sync"
	"time"

	"TokenPulse/internal/domain/models"
	drepo "TokenPulse/internal/domain/repository"
	domsvc "TokenPulse/internal/domain/service"
	"TokenPulse/internal/scoring"
	"TokenPulse/pkg/logger"
)

const publishTimeout = 3 * time.Second

// ScoreService orchestrates one scoring request: normalize weights, fetch
// upstream context, run the factor scorers, aggregate, and join the queued
// price forecast into the response.
type ScoreService struct {
	gateway drepo.BackendGateway
	market  drepo.MarketDataProvider
	// forecaster is expected to degrade internally; the pipeline treats its
	// result as final.
	forecaster domsvc.Forecaster
	publisher  drepo.ScorePublisher
	engine     *scoring.Engine
	metrics    drepo.Metrics
	log        *logger.Logger
}

func NewScoreService(
	gateway drepo.BackendGateway,
	market drepo.MarketDataProvider,
	forecaster domsvc.Forecaster,
	publisher drepo.ScorePublisher,
	engine *scoring.Engine,
	metrics drepo.Metrics,
	log *logger.Logger,
) *ScoreService {
	return &ScoreService{
		gateway:    gateway,
		market:     market,
		forecaster: forecaster,
		publisher:  publisher,
		engine:     engine,
		metrics:    metrics,
		log:        log,
	}
}

// Score runs the full pipeline for one request. The only error it returns
// is invalid weights; every upstream failure degrades to neutral inputs.
func (s *ScoreService) Score(ctx context.Context, req *models.ScoreRequest) (*models.ScoreResponse, error) {
	start := time.Now()

	// A supplied-but-empty map is not the same as no map: it has weight
	// sum zero and is rejected below.
	weights := req.Weights
	if weights == nil {
		weights = scoring.DefaultWeights()
	}
	normalized, err := scoring.Normalize(weights)
	if err != nil {
		return nil, err
	}

	// The upstream fetches are independent; issue them together.
	var (
		wg        sync.WaitGroup
		macro     models.MacroSnapshot
		sentiment *models.SentimentSnapshot
		filings   models.FilingsByFiler
		news      []models.NewsArticle
		prices    models.PriceSeries
	)
	wg.Add(5)
	go func() { defer wg.Done(); macro = s.gateway.FetchMacro(ctx) }()
	go func() { defer wg.Done(); sentiment = s.gateway.FetchSentiment(ctx, req.Data.Symbol) }()
	go func() { defer wg.Done(); filings = s.gateway.FetchFilings(ctx) }()
	go func() { defer wg.Done(); news = s.gateway.FetchNews(ctx) }()
	go func() { defer wg.Done(); prices = s.market.HistoricalPrices(ctx, req.Data.ID) }()
	wg.Wait()

	// The forecast task runs while scoring and aggregation proceed; the
	// response assembly below joins on it.
	forecastCh := make(chan float64, 1)
	go func() {
		price, _ := s.forecaster.Predict(ctx, models.ForecastRequest{
			Prices:    prices,
			Horizon:   req.Horizon,
			Macro:     macro,
			Sentiment: sentiment,
		})
		forecastCh <- price
	}()

	scores := s.engine.ComputeAll(scoring.Inputs{
		Macro:      macro,
		Sentiment:  sentiment,
		Regulatory: models.RegulatoryCorpus{Filings: filings, News: news},
	})
	aggregated := scoring.Aggregate(scores, normalized)
	priceTarget := <-forecastCh

	resp := &models.ScoreResponse{
		RiskScore:      scoring.RiskScore(aggregated),
		Recommendation: scoring.Recommend(aggregated),
		PriceTarget:    priceTarget,
		FactorScores:   scores,
	}

	s.metrics.RecordScore(string(resp.Recommendation))
	s.metrics.RecordPriceTarget(req.Data.Symbol, priceTarget)
	s.metrics.RecordLatency("score_token", time.Since(start).Seconds())

	s.publishEvent(req, resp)

	return resp, nil
}

// publishEvent emits the score event without holding up the response. The
// detached context keeps the publish alive after the request ends.
func (s *ScoreService) publishEvent(req *models.ScoreRequest, resp *models.ScoreResponse) {
	ev := &models.ScoreEvent{
		TokenID:        req.Data.ID,
		Symbol:         req.Data.Symbol,
		Horizon:        req.Horizon,
		RiskScore:      resp.RiskScore,
		Recommendation: resp.Recommendation,
		PriceTarget:    resp.PriceTarget,
		Timestamp:      time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.publisher.PublishScore(ctx, ev); err != nil {
			s.log.Warn("score event publish failed",
				logger.String("symbol", ev.Symbol),
				logger.Error(err),
			)
		}
	}()
}
