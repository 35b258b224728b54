// Package backend is the HTTP gateway to the upstream collector that
// feeds macro, sentiment and regulatory data.
package backend

import (
	"context"
	"strings"

	"TokenPulse/internal/domain/models"
	"TokenPulse/pkg/config"
	xhttp "TokenPulse/pkg/http"
	"TokenPulse/pkg/logger"
)

const (
	endpointMacro     = "/fetch-macro"
	endpointSentiment = "/fetch-sentiment"
	endpointFilings   = "/fetch-standard-regulatory"
	endpointNews      = "/fetch-regulatory"
)

// FailureRecorder counts upstream fetch failures by endpoint.
type FailureRecorder interface {
	RecordUpstreamFailure(endpoint string)
}

// Client fetches scoring inputs from the backend. Every fetch degrades to
// absence on failure: a warning and a nil result, never an error to the
// caller.
type Client struct {
	baseURL string
	http    *xhttp.Client
	log     *logger.Logger
	metrics FailureRecorder
}

func NewClient(cfg *config.Config, log *logger.Logger, metrics FailureRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    xhttp.NewClient(xhttp.WithTimeout(cfg.Backend.FetchTimeout)),
		log:     log,
		metrics: metrics,
	}
}

// FetchMacro returns the CPI observation series, or nil when the upstream
// is unavailable.
func (c *Client) FetchMacro(ctx context.Context) models.MacroSnapshot {
	var snap models.MacroSnapshot
	if !c.fetch(ctx, endpointMacro, nil, &snap) {
		return nil
	}
	return snap
}

// FetchSentiment returns the fear/greed snapshot for a token symbol, or
// nil when the upstream is unavailable.
func (c *Client) FetchSentiment(ctx context.Context, symbol string) *models.SentimentSnapshot {
	var snap models.SentimentSnapshot
	query := map[string][]string{"tokenSymbol": {symbol}}
	if !c.fetch(ctx, endpointSentiment, query, &snap) {
		return nil
	}
	return &snap
}

// FetchFilings returns the standardized filings half of the regulatory
// corpus, grouped by filer.
func (c *Client) FetchFilings(ctx context.Context) models.FilingsByFiler {
	var filings models.FilingsByFiler
	if !c.fetch(ctx, endpointFilings, nil, &filings) {
		return nil
	}
	return filings
}

// FetchNews returns the news half of the regulatory corpus.
func (c *Client) FetchNews(ctx context.Context) []models.NewsArticle {
	var news []models.NewsArticle
	if !c.fetch(ctx, endpointNews, nil, &news) {
		return nil
	}
	return news
}

func (c *Client) fetch(ctx context.Context, endpoint string, query map[string][]string, dest interface{}) bool {
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + endpoint,
		QueryParams: query,
	}, dest)
	if err == nil {
		return true
	}

	c.log.Warn("backend fetch failed",
		logger.String("endpoint", endpoint),
		logger.Error(err),
	)
	if c.metrics != nil {
		c.metrics.RecordUpstreamFailure(endpoint)
	}
	return false
}
