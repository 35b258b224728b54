// Package marketdata fetches historical price series from a
// CoinGecko-compatible market-data API.
package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/config"
	xhttp "TokenPulse/pkg/http"
	"TokenPulse/pkg/logger"
)

const apiKeyHeader = "x-cg-demo-api-key"

// FailureRecorder counts failed price-history fetches.
type FailureRecorder interface {
	RecordUpstreamFailure(endpoint string)
}

// Client fetches historical prices. A missing API key or any fetch failure
// yields an empty series; price history is never a hard dependency of a
// scoring request.
type Client struct {
	baseURL    string
	apiKey     string
	windowDays int
	http       *xhttp.Client
	log        *logger.Logger
	metrics    FailureRecorder
}

func NewClient(cfg *config.Config, log *logger.Logger, metrics FailureRecorder) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.MarketData.BaseURL, "/"),
		apiKey:     cfg.MarketData.APIKey,
		windowDays: cfg.MarketData.WindowDays,
		http:       xhttp.NewClient(xhttp.WithTimeout(cfg.MarketData.FetchTimeout)),
		log:        log,
		metrics:    metrics,
	}
}

// HistoricalPrices returns up to windowDays of daily prices for an asset.
// Without an API key no request is made at all.
func (c *Client) HistoricalPrices(ctx context.Context, assetID string) models.PriceSeries {
	if c.apiKey == "" {
		c.log.Warn("market data api key missing, skipping price history",
			logger.String("asset_id", assetID),
		)
		return nil
	}

	var resp struct {
		Prices models.PriceSeries `json:"prices"`
	}
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodGet,
		URL:     fmt.Sprintf("%s/coins/%s/market_chart", c.baseURL, url.PathEscape(assetID)),
		Headers: map[string]string{apiKeyHeader: c.apiKey},
		QueryParams: map[string][]string{
			"vs_currency": {"usd"},
			"days":        {strconv.Itoa(c.windowDays)},
		},
	}, &resp)
	if err != nil {
		c.log.Warn("price history fetch failed",
			logger.String("asset_id", assetID),
			logger.Error(err),
		)
		if c.metrics != nil {
			c.metrics.RecordUpstreamFailure("market_chart")
		}
		return nil
	}
	return resp.Prices
}
