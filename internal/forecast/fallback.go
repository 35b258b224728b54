package forecast

import (
	"context"
	"errors"

	"TokenPulse/internal/domain/models"
	domsvc "TokenPulse/internal/domain/service"
	"TokenPulse/pkg/logger"
	"TokenPulse/pkg/queue"
)

// FallbackRecorder counts substituted forecasts by reason.
type FallbackRecorder interface {
	RecordForecastFallback(reason string)
}

// WithFallback wraps a Forecaster so every failure path degrades to a
// fixed fallback price. A forecast fault never surfaces to the caller.
type WithFallback struct {
	inner    domsvc.Forecaster
	fallback float64
	log      *logger.Logger
	metrics  FallbackRecorder
}

func NewWithFallback(inner domsvc.Forecaster, fallbackPrice float64, log *logger.Logger, metrics FallbackRecorder) *WithFallback {
	return &WithFallback{inner: inner, fallback: fallbackPrice, log: log, metrics: metrics}
}

// Predict returns the inner forecast, or the fallback price when the inner
// call fails for any reason.
func (w *WithFallback) Predict(ctx context.Context, req models.ForecastRequest) (float64, error) {
	price, err := w.inner.Predict(ctx, req)
	if err == nil {
		return price, nil
	}

	reason := fallbackReason(err)
	if w.log != nil {
		w.log.Warn("forecast fell back",
			logger.String("reason", reason),
			logger.Error(err),
		)
	}
	if w.metrics != nil {
		w.metrics.RecordForecastFallback(reason)
	}
	return w.fallback, nil
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, queue.ErrResultTimeout):
		return "timeout"
	case errors.Is(err, ErrInsufficientData):
		return "insufficient_data"
	case errors.Is(err, ErrInvalidPrediction):
		return "invalid_prediction"
	case errors.Is(err, ErrSubmitFailed):
		return "submit_failed"
	default:
		return "task_failed"
	}
}
