package forecast

import (
	"errors"
	"math"
	"testing"

	"TokenPulse/internal/domain/models"
)

func series(prices ...float64) models.PriceSeries {
	s := make(models.PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = models.PricePoint{Timestamp: int64(i) * 86400000, Price: p}
	}
	return s
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPredictEmptySeries(t *testing.T) {
	_, err := NewEngine().Predict(models.ForecastRequest{})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("err = %v, want ErrInsufficientData", err)
	}
}

func TestPredictRampWeightedAverage(t *testing.T) {
	// Weights 0.5, 1.0, 1.5 normalize to 1/6, 2/6, 3/6:
	// 10/6 + 40/6 + 90/6 = 70/3.
	got, err := NewEngine().Predict(models.ForecastRequest{Prices: series(10, 20, 30)})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if want := 70.0 / 3.0; !approxEqual(got, want) {
		t.Fatalf("prediction = %v, want %v", got, want)
	}
}

func TestPredictUsesLastThirtyPoints(t *testing.T) {
	// Outliers beyond the window must not leak in.
	prices := make([]float64, 0, 40)
	for i := 0; i < 10; i++ {
		prices = append(prices, 1e6)
	}
	for i := 0; i < 30; i++ {
		prices = append(prices, 100)
	}
	got, err := NewEngine().Predict(models.ForecastRequest{Prices: series(prices...)})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if !approxEqual(got, 100) {
		t.Fatalf("prediction = %v, want 100", got)
	}
}

func TestPredictSinglePoint(t *testing.T) {
	got, err := NewEngine().Predict(models.ForecastRequest{Prices: series(42)})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if !approxEqual(got, 42) {
		t.Fatalf("prediction = %v, want 42", got)
	}
}

func TestPredictNonPositiveBase(t *testing.T) {
	// (0.5*10 + 1.5*(-10)) / 2 = -5.
	_, err := NewEngine().Predict(models.ForecastRequest{Prices: series(10, -10)})
	if !errors.Is(err, ErrInvalidPrediction) {
		t.Fatalf("err = %v, want ErrInvalidPrediction", err)
	}
}

func TestPredictAppliesMultipliers(t *testing.T) {
	fearGreed := 100.0
	req := models.ForecastRequest{
		Prices:    series(10, 20, 30),
		Macro:     models.MacroSnapshot{{Date: "2025-07-01", Value: models.NewCPIValue(1)}},
		Sentiment: &models.SentimentSnapshot{FearGreed: &fearGreed},
	}
	got, err := NewEngine().Predict(req)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	// Base 70/3, macro score +2 gives 1.1, sentiment +2 gives 1.2.
	if want := 70.0 / 3.0 * 1.1 * 1.2; !approxEqual(got, want) {
		t.Fatalf("prediction = %v, want %v", got, want)
	}
}

func TestPredictHorizonInert(t *testing.T) {
	short, err := NewEngine().Predict(models.ForecastRequest{Prices: series(5, 15), Horizon: "short"})
	if err != nil {
		t.Fatalf("predict short: %v", err)
	}
	long, err := NewEngine().Predict(models.ForecastRequest{Prices: series(5, 15), Horizon: "long"})
	if err != nil {
		t.Fatalf("predict long: %v", err)
	}
	if short != long {
		t.Fatalf("horizon changed the result: %v vs %v", short, long)
	}
}
