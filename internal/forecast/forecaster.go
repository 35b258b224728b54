package forecast

import (
	"context"
	"errors"
	"fmt"
	"time"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/queue"
)

// ErrSubmitFailed reports that the forecast task never reached the queue.
var ErrSubmitFailed = errors.New("forecast task submit failed")

const defaultResultTimeout = 10 * time.Second

// QueueForecaster submits forecast tasks to the shared queue and waits a
// bounded time for the worker's result envelope.
type QueueForecaster struct {
	queue   queue.TaskQueue
	timeout time.Duration
}

func NewQueueForecaster(q queue.TaskQueue, timeout time.Duration) *QueueForecaster {
	if timeout <= 0 {
		timeout = defaultResultTimeout
	}
	return &QueueForecaster{queue: q, timeout: timeout}
}

// Predict enqueues the forecast task and blocks for its result. An empty
// price history fails fast without a queue round trip. ctx bounds only the
// wait; an abandoned task may still finish and leave its envelope to
// expire.
func (f *QueueForecaster) Predict(ctx context.Context, req models.ForecastRequest) (float64, error) {
	if len(req.Prices) == 0 {
		return 0, ErrInsufficientData
	}

	taskID, err := f.queue.Enqueue(ctx, TaskTypePredictPrice, req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	result, err := f.queue.AwaitResult(ctx, taskID, f.timeout)
	if err != nil {
		return 0, err
	}

	var price float64
	if err := result.Decode(&price); err != nil {
		return 0, err
	}
	if price <= 0 {
		return 0, ErrInvalidPrediction
	}
	return price, nil
}
