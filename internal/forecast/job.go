package forecast

import (
	"context"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/queue"
)

// TaskTypePredictPrice routes forecast payloads to the forecast job.
const TaskTypePredictPrice = "forecast.predict_price"

// Job adapts the engine to the queue worker interface.
type Job struct {
	engine *Engine
}

func NewJob(engine *Engine) *Job {
	return &Job{engine: engine}
}

func (j *Job) Name() string { return "forecast-predict-price" }

func (j *Job) Type() string { return TaskTypePredictPrice }

// Handle decodes the payload and runs the prediction. The price travels
// back to the submitter in the task's result envelope.
func (j *Job) Handle(ctx context.Context, payload interface{}) (interface{}, error) {
	req, err := queue.ParsePayload[models.ForecastRequest](payload)
	if err != nil {
		return nil, err
	}
	return j.engine.Predict(*req)
}
