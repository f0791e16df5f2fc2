package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/yourusername/sportsline-analyzer/internal/models"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig(baseURL)
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	cfg.RateLimit = 1000
	return cfg
}

func TestAnalyzeDecodesResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sportsline/analyze" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"moneyline_table":[{"game_id":"g1"}],"spread_table":[{"game_id":"g1"}],"csv":{"moneyline":"a","spread":"b"}}`))
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL), nil)
	defer c.Close()

	result, err := c.Analyze(context.Background(), &models.Batch{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.MoneylineTable) != 1 || result.MoneylineTable[0].GameID != "g1" {
		t.Errorf("unexpected table: %+v", result.MoneylineTable)
	}
	if result.CSV.Moneyline != "a" || result.CSV.Spread != "b" {
		t.Errorf("unexpected CSV payload: %+v", result.CSV)
	}
}

func TestRetriesOnServerError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("game_id,league\n"))
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL), nil)
	defer c.Close()

	csv, err := c.MoneylineCSV(context.Background(), &models.Batch{})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if csv != "game_id,league\n" {
		t.Errorf("unexpected CSV: %q", csv)
	}
	if atomic.LoadInt32(&calls) < 2 {
		t.Errorf("expected at least 2 attempts, got %d", calls)
	}
}

func TestClientErrorNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"payload failed validation"}`))
	}))
	defer ts.Close()

	c := New(testConfig(ts.URL), nil)
	defer c.Close()

	_, err := c.Analyze(context.Background(), &models.Batch{})
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Errorf("client errors must not be retried, got %d attempts", calls)
	}
}
