package service

import (
	"context"

	"TokenPulse/internal/domain/models"
)

// Forecaster produces a price target from a forecast request. The queue
// implementation runs the computation in a worker and waits for the result
// envelope; ctx bounds only the wait, not the task.
type Forecaster interface {
	Predict(ctx context.Context, req models.ForecastRequest) (float64, error)
}
