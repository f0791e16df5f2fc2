package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/sportsline-analyzer/internal/metrics"
	"github.com/yourusername/sportsline-analyzer/internal/models"
	"github.com/yourusername/sportsline-analyzer/internal/render"
)

// AnalyzeResponse is the JSON payload of POST /sportsline/analyze.
type AnalyzeResponse struct {
	MoneylineTable []models.MoneylineRow `json:"moneyline_table"`
	SpreadTable    []models.SpreadRow    `json:"spread_table"`
	CSV            CSVRenderings         `json:"csv"`
}

// CSVRenderings carries the delimited-text form of both tables.
type CSVRenderings struct {
	Moneyline string `json:"moneyline"`
	Spread    string `json:"spread"`
}

type errorResponse struct {
	Error  string              `json:"error"`
	Detail []models.FieldError `json:"detail,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"service": "sportsline-analyzer",
		"status":  "ok",
		"endpoints": map[string]string{
			"analyze":               "POST /sportsline/analyze",
			"analyze_csv_moneyline": "POST /sportsline/analyze/csv/moneyline",
			"analyze_csv_spread":    "POST /sportsline/analyze/csv/spread",
			"health":                "GET /health",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "sportsline-analyzer",
	})
}

// handleAnalyze returns both tables plus their CSV renderings.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.analyze(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAnalyzeCSVMoneyline(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.analyze(w, r)
	if !ok {
		return
	}
	respondCSV(w, resp.CSV.Moneyline)
}

func (s *Server) handleAnalyzeCSVSpread(w http.ResponseWriter, r *http.Request) {
	resp, ok := s.analyze(w, r)
	if !ok {
		return
	}
	respondCSV(w, resp.CSV.Spread)
}

// analyze decodes, validates, and analyzes a batch, serving from the
// response cache when an identical body was seen recently. On failure it
// writes the error response and returns ok=false.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request) (*AnalyzeResponse, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, int64(s.cfg.MaxBodyBytes)))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body", nil)
		return nil, false
	}

	if s.cache != nil {
		if cached, found := s.cache.Get(body); found {
			metrics.CacheHitsTotal.Inc()
			return cached, true
		}
		metrics.CacheMissesTotal.Inc()
	}

	var batch models.Batch
	if err := json.Unmarshal(body, &batch); err != nil {
		metrics.RecordValidationFailure()
		respondError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error(), nil)
		return nil, false
	}

	if fieldErrs := models.ValidateBatch(s.validate, &batch); fieldErrs != nil {
		metrics.RecordValidationFailure()
		respondError(w, http.StatusUnprocessableEntity, "payload failed validation", fieldErrs)
		return nil, false
	}
	batch.Normalize()

	start := time.Now()
	mlRows, atsRows := s.analyzer.AnalyzeGames(batch.Games)
	metrics.RecordBatchAnalyzed(len(batch.Games), time.Since(start).Seconds())

	s.logger.WithFields(logrus.Fields{
		"games":       len(batch.Games),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Batch analyzed")

	resp := &AnalyzeResponse{
		MoneylineTable: mlRows,
		SpreadTable:    atsRows,
		CSV: CSVRenderings{
			Moneyline: render.MoneylineCSV(mlRows),
			Spread:    render.SpreadCSV(atsRows),
		},
	}

	if s.cache != nil {
		s.cache.Set(body, resp)
	}

	return resp, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondCSV(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func respondError(w http.ResponseWriter, status int, msg string, detail []models.FieldError) {
	respondJSON(w, status, errorResponse{Error: msg, Detail: detail})
}
