package models

// ForecastRequest is the price-forecast task payload. It crosses the task
// queue as JSON, so it carries everything the worker needs: the price
// history plus the raw macro and sentiment snapshots the worker derives
// its adjustment factors from.
type ForecastRequest struct {
	Prices    PriceSeries        `json:"prices"`
	Horizon   string             `json:"horizon"`
	Macro     MacroSnapshot      `json:"macro,omitempty"`
	Sentiment *SentimentSnapshot `json:"sentiment,omitempty"`
}
