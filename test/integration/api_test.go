package integration

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/sportsline-analyzer/internal/analyzer"
	"github.com/yourusername/sportsline-analyzer/internal/client"
	"github.com/yourusername/sportsline-analyzer/internal/config"
	"github.com/yourusername/sportsline-analyzer/internal/models"
	"github.com/yourusername/sportsline-analyzer/internal/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	cfg := config.ServerConfig{
		Port:                   8080,
		ReadTimeoutSeconds:     5,
		WriteTimeoutSeconds:    10,
		IdleTimeoutSeconds:     60,
		ShutdownTimeoutSeconds: 5,
		MaxBodyBytes:           1 << 20,
	}
	cache := server.NewResponseCache(time.Minute, 64)
	srv := server.New(cfg, analyzer.NewDefault(log), cache, log)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func f(v float64) *float64 { return &v }

func sampleBatch() *models.Batch {
	return &models.Batch{
		Games: []models.GameRecord{
			{
				GameID:   "phi-dal",
				League:   "NFL",
				Date:     "2025-11-02",
				HomeTeam: "DAL",
				AwayTeam: "PHI",
				Projection: models.Projection{
					ProjHomePts: f(24),
					ProjAwayPts: f(20),
					ProjTotal:   f(44),
				},
				MarketLines: []models.LineItem{
					{Market: models.MarketMoneyline, Option: models.OptionHome, CurrentLine: f(-150)},
					{Market: models.MarketSpread, Option: models.OptionHome, CurrentLine: f(-3.5), CurrentPrice: f(-110)},
				},
				Splits: []models.SplitItem{
					{Market: models.MarketMoneyline, Option: models.OptionHome, PublicPct: f(60), MoneyPct: f(75)},
				},
				Experts: []models.ExpertItem{
					{Market: models.MarketMoneyline, Option: models.OptionHome, Count: 3},
					{Market: models.MarketMoneyline, Option: models.OptionAway, Count: 1},
					{Market: models.MarketSpread, Option: models.OptionHome, Count: 3},
					{Market: models.MarketSpread, Option: models.OptionAway, Count: 1},
				},
			},
			{
				GameID:   "kc-buf",
				League:   "NFL",
				Date:     "2025-11-02",
				HomeTeam: "BUF",
				AwayTeam: "KC",
				Projection: models.Projection{
					ProjHomePts: f(21),
					ProjAwayPts: f(23),
				},
				MarketLines: []models.LineItem{
					{Market: models.MarketMoneyline, Option: models.OptionHome, CurrentLine: f(120)},
				},
			},
		},
	}
}

func TestAnalyzeRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	cfg := client.DefaultConfig(ts.URL)
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	c := client.New(cfg, nil)
	defer c.Close()

	result, err := c.Analyze(context.Background(), sampleBatch())
	require.NoError(t, err)
	require.Len(t, result.MoneylineTable, 2)
	require.Len(t, result.SpreadTable, 2)

	// Rows come back ranked by score, so the fully-signaled game leads.
	top := result.MoneylineTable[0]
	assert.Equal(t, "phi-dal", top.GameID)
	require.NotNil(t, top.ImpliedHomeMLProb)
	assert.InDelta(t, 0.6, *top.ImpliedHomeMLProb, 1e-9)
	assert.Equal(t, 3, top.ExpertsMoneylineHome)
	assert.Equal(t, 1, top.ExpertsMoneylineAway)

	second := result.MoneylineTable[1]
	assert.GreaterOrEqual(t, top.BetScoreMLHome, second.BetScoreMLHome)

	// The JSON tables and the CSV strings describe the same analysis.
	assert.Contains(t, result.CSV.Moneyline, "phi-dal")
	assert.Contains(t, result.CSV.Spread, "phi-dal")
}

func TestCSVEndpointsRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	cfg := client.DefaultConfig(ts.URL)
	c := client.New(cfg, nil)
	defer c.Close()

	mlCSV, err := c.MoneylineCSV(context.Background(), sampleBatch())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(mlCSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus one row per game")
	assert.Equal(t, "game_id", records[0][0])
	assert.Equal(t, "BetScore_ML_home", records[0][len(records[0])-1])

	spreadCSV, err := c.SpreadCSV(context.Background(), sampleBatch())
	require.NoError(t, err)

	records, err = csv.NewReader(strings.NewReader(spreadCSV)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "BetScore_ATS_home", records[0][len(records[0])-1])

	// Missing spread line renders empty cells, never a textual null.
	for _, row := range records[1:] {
		if row[0] == "kc-buf" {
			assert.NotContains(t, strings.Join(row, ","), "null")
		}
	}
}

func TestValidationRejectedOverTheWire(t *testing.T) {
	ts := newTestServer(t)

	bad := sampleBatch()
	bad.Games[0].MarketLines[0].Option = "over" // not valid for moneyline

	body, err := json.Marshal(bad)
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/sportsline/analyze", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var payload struct {
		Error  string `json:"error"`
		Detail []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Detail)
	assert.Contains(t, payload.Detail[0].Field, "Option")
}

func TestHealthAndRoot(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/", "/health"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestCachedResponsesAreStable(t *testing.T) {
	ts := newTestServer(t)

	cfg := client.DefaultConfig(ts.URL)
	c := client.New(cfg, nil)
	defer c.Close()

	first, err := c.Analyze(context.Background(), sampleBatch())
	require.NoError(t, err)
	second, err := c.Analyze(context.Background(), sampleBatch())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
