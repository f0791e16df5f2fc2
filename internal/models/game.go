// Package models defines the input and output records for game analysis.
package models

// Market identifies a betting market.
type Market string

// Option identifies a side of a market.
type Option string

// Market and option values accepted on input.
const (
	MarketMoneyline Market = "moneyline"
	MarketSpread    Market = "spread"
	MarketTotal     Market = "total"

	OptionHome  Option = "home"
	OptionAway  Option = "away"
	OptionOver  Option = "over"
	OptionUnder Option = "under"
)

// Projection holds model-projected points for a game. Home and away points
// are required; without both, every downstream probability is unknown.
type Projection struct {
	ProjHomePts    *float64 `json:"proj_home_pts" validate:"required"`
	ProjAwayPts    *float64 `json:"proj_away_pts" validate:"required"`
	ProjTotal      *float64 `json:"proj_total,omitempty"`
	ProjSpreadHome *float64 `json:"proj_spread_home,omitempty"`
	ProjSpreadAway *float64 `json:"proj_spread_away,omitempty"`
	Grade          *string  `json:"grade,omitempty"`
}

// LineItem is one market quote. For moneyline the line fields carry American
// odds; for spread/total they carry the number (e.g. -3.5 / 46.5) and the
// price fields carry the odds (e.g. -110).
type LineItem struct {
	Market       Market   `json:"market" validate:"required,market"`
	Option       Option   `json:"option" validate:"required,marketoption"`
	OpenLine     *float64 `json:"open_line,omitempty"`
	OpenPrice    *float64 `json:"open_price,omitempty"`
	CurrentLine  *float64 `json:"current_line,omitempty"`
	CurrentPrice *float64 `json:"current_price,omitempty"`
	Book         *string  `json:"book,omitempty"`
}

// SplitItem carries public-ticket and money percentages for one market side.
type SplitItem struct {
	Market    Market   `json:"market" validate:"required,market"`
	Option    Option   `json:"option" validate:"required,marketoption"`
	PublicPct *float64 `json:"public_pct,omitempty"`
	MoneyPct  *float64 `json:"money_pct,omitempty"`
}

// ExpertItem is a count of expert picks for one side. Experts only pick
// moneyline or spread. Counts with the same key are additive.
type ExpertItem struct {
	Market Market  `json:"market" validate:"required,expertmarket"`
	Option Option  `json:"option" validate:"required,expertoption"`
	Count  int     `json:"count"`
	Source *string `json:"source,omitempty"`
}

// InjuryItem is a per-player injury impact attributed to one team.
// Impacts are summed per team; this is deliberately a crude total.
type InjuryItem struct {
	Team       string   `json:"team" validate:"required"`
	Player     *string  `json:"player,omitempty"`
	Pos        *string  `json:"pos,omitempty"`
	Status     *string  `json:"status,omitempty"`
	Impact0to1 *float64 `json:"impact_0to1,omitempty"`
	Note       *string  `json:"note,omitempty"`
}

// GameRecord is one game with all of its market and model inputs. Records are
// immutable once constructed; analysis only reads the owned lists.
type GameRecord struct {
	GameID         string  `json:"game_id" validate:"required"`
	League         string  `json:"league" validate:"required"`
	Date           string  `json:"date" validate:"required"`
	StartTimeLocal *string `json:"start_time_local,omitempty"`
	HomeTeam       string  `json:"home_team" validate:"required"`
	AwayTeam       string  `json:"away_team" validate:"required"`

	Projection  Projection   `json:"projection" validate:"required"`
	MarketLines []LineItem   `json:"market_lines" validate:"dive"`
	Splits      []SplitItem  `json:"splits" validate:"dive"`
	Experts     []ExpertItem `json:"experts" validate:"dive"`
	Injuries    []InjuryItem `json:"injuries" validate:"dive"`
}

// Batch is the request payload: the set of games to analyze. An empty batch
// is valid and analyzes to two empty tables.
type Batch struct {
	Games []GameRecord `json:"games" validate:"dive"`
}
