package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	scoresTotal       *prometheus.CounterVec
	upstreamFailures  *prometheus.CounterVec
	scorerFaults      *prometheus.CounterVec
	forecastFallbacks *prometheus.CounterVec
	lastPriceTarget   *prometheus.GaugeVec
	latency           *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		scoresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_scores_total",
				Help: "Total number of score computations by recommendation",
			},
			[]string{"recommendation"},
		),
		upstreamFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_upstream_failures_total",
				Help: "Total number of upstream fetches that yielded no data",
			},
			[]string{"endpoint"},
		),
		scorerFaults: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_scorer_faults_total",
				Help: "Total number of factor scorers neutralized after a fault",
			},
			[]string{"factor"},
		),
		forecastFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenpulse_forecast_fallbacks_total",
				Help: "Total number of price targets substituted with the fallback",
			},
			[]string{"reason"},
		),
		lastPriceTarget: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tokenpulse_last_price_target",
				Help: "Last computed price target for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tokenpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordScore counts a completed scoring run by its recommendation.
func (r *Recorder) RecordScore(recommendation string) {
	r.scoresTotal.WithLabelValues(recommendation).Inc()
}

// RecordUpstreamFailure counts a fetch that came back absent.
func (r *Recorder) RecordUpstreamFailure(endpoint string) {
	r.upstreamFailures.WithLabelValues(endpoint).Inc()
}

// RecordScorerFault counts a factor scorer neutralized to zero.
func (r *Recorder) RecordScorerFault(factor string) {
	r.scorerFaults.WithLabelValues(factor).Inc()
}

// RecordForecastFallback counts a fallback price substitution.
func (r *Recorder) RecordForecastFallback(reason string) {
	r.forecastFallbacks.WithLabelValues(reason).Inc()
}

// RecordPriceTarget records the last price target for a symbol.
func (r *Recorder) RecordPriceTarget(symbol string, price float64) {
	r.lastPriceTarget.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
