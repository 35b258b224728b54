package forecast

import (
	"context"
	"errors"
	"testing"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/queue"
)

type stubForecaster struct {
	price float64
	err   error
}

func (s stubForecaster) Predict(ctx context.Context, req models.ForecastRequest) (float64, error) {
	return s.price, s.err
}

type reasonRecorder struct{ reasons []string }

func (r *reasonRecorder) RecordForecastFallback(reason string) {
	r.reasons = append(r.reasons, reason)
}

func TestWithFallbackPassesThrough(t *testing.T) {
	rec := &reasonRecorder{}
	f := NewWithFallback(stubForecaster{price: 55}, 1000, nil, rec)

	got, err := f.Predict(context.Background(), models.ForecastRequest{})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got != 55 {
		t.Fatalf("price = %v, want 55", got)
	}
	if len(rec.reasons) != 0 {
		t.Fatalf("unexpected fallback recorded: %v", rec.reasons)
	}
}

func TestWithFallbackSubstitutes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		reason string
	}{
		{"timeout", queue.ErrResultTimeout, "timeout"},
		{"insufficient data", ErrInsufficientData, "insufficient_data"},
		{"invalid prediction", ErrInvalidPrediction, "invalid_prediction"},
		{"submit failed", ErrSubmitFailed, "submit_failed"},
		{"worker fault", errors.New("task failed: boom"), "task_failed"},
	}
	for _, tc := range cases {
		rec := &reasonRecorder{}
		f := NewWithFallback(stubForecaster{err: tc.err}, 1000, nil, rec)

		got, err := f.Predict(context.Background(), models.ForecastRequest{})
		if err != nil {
			t.Fatalf("%s: fallback surfaced error %v", tc.name, err)
		}
		if got != 1000 {
			t.Fatalf("%s: price = %v, want fallback 1000", tc.name, got)
		}
		if len(rec.reasons) != 1 || rec.reasons[0] != tc.reason {
			t.Fatalf("%s: recorded %v, want [%s]", tc.name, rec.reasons, tc.reason)
		}
	}
}
