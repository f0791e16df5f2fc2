// Package client provides an HTTP client for a running analyzer service,
// used by the report CLI's remote mode.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/sportsline-analyzer/internal/models"
)

// Config holds client tuning knobs.
type Config struct {
	BaseURL      string
	Timeout      time.Duration
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// RateLimit is requests per second. Client-side politeness only; the
	// service does not enforce limits.
	RateLimit float64
}

// DefaultConfig returns recommended defaults.
func DefaultConfig(baseURL string) Config {
	return Config{
		BaseURL:      baseURL,
		Timeout:      30 * time.Second,
		MaxRetries:   3,
		RetryWaitMin: 100 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		RateLimit:    5.0,
	}
}

// AnalyzerClient posts game batches to an analyzer service with retries and
// client-side rate limiting.
type AnalyzerClient struct {
	baseURL string
	client  *retryablehttp.Client
	limiter *rate.Limiter
	logger  *logrus.Logger
}

// AnalyzeResult mirrors the JSON body of POST /sportsline/analyze.
type AnalyzeResult struct {
	MoneylineTable []models.MoneylineRow `json:"moneyline_table"`
	SpreadTable    []models.SpreadRow    `json:"spread_table"`
	CSV            struct {
		Moneyline string `json:"moneyline"`
		Spread    string `json:"spread"`
	} `json:"csv"`
}

// New creates a client for the analyzer service at cfg.BaseURL.
func New(cfg Config, logger *logrus.Logger) *AnalyzerClient {
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = nil

	return &AnalyzerClient{
		baseURL: cfg.BaseURL,
		client:  retryClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		logger:  logger,
	}
}

// Analyze posts a batch and returns both tables plus CSV renderings.
func (c *AnalyzerClient) Analyze(ctx context.Context, batch *models.Batch) (*AnalyzeResult, error) {
	body, err := c.post(ctx, "/sportsline/analyze", batch)
	if err != nil {
		return nil, err
	}
	result := &AnalyzeResult{}
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to decode analyze response: %w", err)
	}
	return result, nil
}

// MoneylineCSV posts a batch and returns the moneyline report as CSV text.
func (c *AnalyzerClient) MoneylineCSV(ctx context.Context, batch *models.Batch) (string, error) {
	body, err := c.post(ctx, "/sportsline/analyze/csv/moneyline", batch)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// SpreadCSV posts a batch and returns the spread report as CSV text.
func (c *AnalyzerClient) SpreadCSV(ctx context.Context, batch *models.Batch) (string, error) {
	body, err := c.post(ctx, "/sportsline/analyze/csv/spread", batch)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *AnalyzerClient) post(ctx context.Context, path string, batch *models.Batch) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{
				"status": resp.StatusCode,
				"path":   path,
			}).Warn("Analyzer service returned an error")
		}
		return nil, fmt.Errorf("analyzer returned status %d: %s", resp.StatusCode, truncate(body, 256))
	}

	return body, nil
}

// Close releases idle connections.
func (c *AnalyzerClient) Close() error {
	c.client.HTTPClient.CloseIdleConnections()
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
