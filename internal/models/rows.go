package models

// MoneylineRow is one game's moneyline report row, home perspective.
// Nil pointer fields mean the underlying input was absent; they render as
// empty CSV cells and JSON nulls.
type MoneylineRow struct {
	GameID               string   `json:"game_id"`
	League               string   `json:"league"`
	Date                 string   `json:"date"`
	Away                 string   `json:"away"`
	Home                 string   `json:"home"`
	ModelHomeWinProb     *float64 `json:"model_home_win_prob"`
	ImpliedHomeMLProb    *float64 `json:"implied_home_ml_prob"`
	EdgeHomeMLProb       *float64 `json:"edge_home_ml_prob"`
	ExpertsMoneylineHome int      `json:"experts_moneyline_home"`
	ExpertsMoneylineAway int      `json:"experts_moneyline_away"`
	PublicHomeMLPct      *float64 `json:"public_home_ml_pct"`
	MoneyHomeMLPct       *float64 `json:"money_home_ml_pct"`
	InjHomeTotal         *float64 `json:"inj_home_total"`
	InjAwayTotal         *float64 `json:"inj_away_total"`
	BetScoreMLHome       float64  `json:"BetScore_ML_home"`
}

// SpreadRow is one game's against-the-spread report row, home perspective.
type SpreadRow struct {
	GameID              string   `json:"game_id"`
	League              string   `json:"league"`
	Date                string   `json:"date"`
	Away                string   `json:"away"`
	Home                string   `json:"home"`
	SpreadHome          *float64 `json:"spread_home"`
	SpreadHomePrice     *float64 `json:"spread_home_price"`
	ModelHomeCover      *float64 `json:"model_home_cover"`
	ImpHomeCover        *float64 `json:"imp_home_cover"`
	ExpertsSpreadHome   int      `json:"experts_spread_home"`
	ExpertsSpreadAway   int      `json:"experts_spread_away"`
	PublicHomeSpreadPct *float64 `json:"public_home_spread_pct"`
	MoneyHomeSpreadPct  *float64 `json:"money_home_spread_pct"`
	InjHomeTotal        *float64 `json:"inj_home_total"`
	InjAwayTotal        *float64 `json:"inj_away_total"`
	BetScoreATSHome     float64  `json:"BetScore_ATS_home"`
}
