// Package render serializes report rows to delimited text.
package render

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/yourusername/sportsline-analyzer/internal/models"
)

// Fixed column orders for the two reports. These are part of the external
// contract; consumers parse by position.
var (
	MoneylineColumns = []string{
		"game_id", "league", "date", "away", "home",
		"model_home_win_prob", "implied_home_ml_prob", "edge_home_ml_prob",
		"experts_moneyline_home", "experts_moneyline_away",
		"public_home_ml_pct", "money_home_ml_pct",
		"inj_home_total", "inj_away_total",
		"BetScore_ML_home",
	}
	SpreadColumns = []string{
		"game_id", "league", "date", "away", "home",
		"spread_home", "spread_home_price",
		"model_home_cover", "imp_home_cover",
		"experts_spread_home", "experts_spread_away",
		"public_home_spread_pct", "money_home_spread_pct",
		"inj_home_total", "inj_away_total",
		"BetScore_ATS_home",
	}
)

// MoneylineCSV renders moneyline rows as comma-separated text in the fixed
// column order. An empty collection renders as an empty string, no header.
func MoneylineCSV(rows []models.MoneylineRow) string {
	if len(rows) == 0 {
		return ""
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.GameID, r.League, r.Date, r.Away, r.Home,
			optCell(r.ModelHomeWinProb),
			optCell(r.ImpliedHomeMLProb),
			optCell(r.EdgeHomeMLProb),
			strconv.Itoa(r.ExpertsMoneylineHome),
			strconv.Itoa(r.ExpertsMoneylineAway),
			optCell(r.PublicHomeMLPct),
			optCell(r.MoneyHomeMLPct),
			optCell(r.InjHomeTotal),
			optCell(r.InjAwayTotal),
			floatCell(r.BetScoreMLHome),
		})
	}
	return write(MoneylineColumns, records)
}

// SpreadCSV renders spread rows as comma-separated text in the fixed column
// order. An empty collection renders as an empty string, no header.
func SpreadCSV(rows []models.SpreadRow) string {
	if len(rows) == 0 {
		return ""
	}
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.GameID, r.League, r.Date, r.Away, r.Home,
			optCell(r.SpreadHome),
			optCell(r.SpreadHomePrice),
			optCell(r.ModelHomeCover),
			optCell(r.ImpHomeCover),
			strconv.Itoa(r.ExpertsSpreadHome),
			strconv.Itoa(r.ExpertsSpreadAway),
			optCell(r.PublicHomeSpreadPct),
			optCell(r.MoneyHomeSpreadPct),
			optCell(r.InjHomeTotal),
			optCell(r.InjAwayTotal),
			floatCell(r.BetScoreATSHome),
		})
	}
	return write(SpreadColumns, records)
}

func write(header []string, records [][]string) string {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Write(header)
	w.WriteAll(records)
	return buf.String()
}

// optCell renders an unknown value as an empty cell, never a null literal.
func optCell(v *float64) string {
	if v == nil {
		return ""
	}
	return floatCell(*v)
}

func floatCell(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
