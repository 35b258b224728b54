package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"TokenPulse/pkg/config"
	"TokenPulse/pkg/logger"
)

type failureRecorder struct{ endpoints []string }

func (r *failureRecorder) RecordUpstreamFailure(endpoint string) {
	r.endpoints = append(r.endpoints, endpoint)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(&logger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func testClient(t *testing.T, baseURL string, rec FailureRecorder) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.FetchTimeout = time.Second
	return NewClient(cfg, testLogger(t), rec)
}

func TestFetchMacro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fetch-macro" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[{"date":"2025-06-01","value":"2.9"},{"date":"2025-07-01","value":3.4}]`))
	}))
	defer srv.Close()

	snap := testClient(t, srv.URL, nil).FetchMacro(context.Background())
	if len(snap) != 2 {
		t.Fatalf("got %d observations, want 2", len(snap))
	}
	v, ok := snap.LatestValue()
	if !ok || v != 3.4 {
		t.Fatalf("latest = %v ok=%v, want 3.4", v, ok)
	}
}

func TestFetchSentimentPassesSymbol(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fetch-sentiment" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("tokenSymbol"); got != "BTC" {
			t.Errorf("tokenSymbol = %q, want BTC", got)
		}
		w.Write([]byte(`{"fear_greed": 70}`))
	}))
	defer srv.Close()

	snap := testClient(t, srv.URL, nil).FetchSentiment(context.Background(), "BTC")
	if snap == nil {
		t.Fatal("snapshot is nil")
	}
	if got := snap.FearGreedIndex(); got != 70 {
		t.Fatalf("fear/greed = %v, want 70", got)
	}
}

func TestFetchFilings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fetch-standard-regulatory" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"SEC":[{"description":"ETF approval","form":"8-K"}]}`))
	}))
	defer srv.Close()

	filings := testClient(t, srv.URL, nil).FetchFilings(context.Background())
	if len(filings["SEC"]) != 1 {
		t.Fatalf("filings = %v", filings)
	}
	if filings["SEC"][0].Form != "8-K" {
		t.Fatalf("form = %q", filings["SEC"][0].Form)
	}
}

func TestFetchNews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fetch-regulatory" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`[{"title":"Stablecoin clarity","description":"adoption grows"}]`))
	}))
	defer srv.Close()

	news := testClient(t, srv.URL, nil).FetchNews(context.Background())
	if len(news) != 1 || news[0].Title != "Stablecoin clarity" {
		t.Fatalf("news = %v", news)
	}
}

func TestFetchAbsorbsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := &failureRecorder{}
	if snap := testClient(t, srv.URL, rec).FetchMacro(context.Background()); snap != nil {
		t.Fatalf("snapshot = %v, want nil on upstream failure", snap)
	}
	if len(rec.endpoints) != 1 || rec.endpoints[0] != "/fetch-macro" {
		t.Fatalf("recorded failures = %v", rec.endpoints)
	}
}

func TestFetchAbsorbsUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	rec := &failureRecorder{}
	client := testClient(t, srv.URL, rec)
	if news := client.FetchNews(context.Background()); news != nil {
		t.Fatalf("news = %v, want nil", news)
	}
	if snap := client.FetchSentiment(context.Background(), "ETH"); snap != nil {
		t.Fatalf("sentiment = %v, want nil", snap)
	}
	if len(rec.endpoints) != 2 {
		t.Fatalf("recorded failures = %v", rec.endpoints)
	}
}

func TestFetchMacroNullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	if snap := testClient(t, srv.URL, nil).FetchMacro(context.Background()); snap != nil {
		t.Fatalf("snapshot = %v, want nil for null body", snap)
	}
}
