// Package analyzer runs the per-game analysis pipeline and produces the two
// ranked report collections.
package analyzer

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/sportsline-analyzer/internal/models"
	"github.com/yourusername/sportsline-analyzer/internal/oddsmath"
	"github.com/yourusername/sportsline-analyzer/internal/scoring"
	"github.com/yourusername/sportsline-analyzer/internal/signals"
)

// Analyzer holds the fixed model parameters and score weights for a run.
// It is stateless across batches and safe for concurrent use.
type Analyzer struct {
	params  oddsmath.ModelParams
	weights scoring.Weights
	logger  *logrus.Logger
}

// New creates an analyzer with the given model parameters and weights.
func New(params oddsmath.ModelParams, weights scoring.Weights, logger *logrus.Logger) *Analyzer {
	return &Analyzer{params: params, weights: weights, logger: logger}
}

// NewDefault creates an analyzer with the documented defaults.
func NewDefault(logger *logrus.Logger) *Analyzer {
	return New(oddsmath.DefaultModelParams(), scoring.DefaultWeights(), logger)
}

// AnalyzeGames analyzes every game independently and returns the moneyline
// and spread report rows, each sorted descending by BetScore. The sorts are
// stable: equal scores keep encounter order. A failure in one game skips
// that game and never aborts the batch.
func (a *Analyzer) AnalyzeGames(games []models.GameRecord) ([]models.MoneylineRow, []models.SpreadRow) {
	mlRows := make([]models.MoneylineRow, 0, len(games))
	atsRows := make([]models.SpreadRow, 0, len(games))

	for i := range games {
		mlRow, atsRow, ok := a.analyzeGame(&games[i])
		if !ok {
			continue
		}
		mlRows = append(mlRows, mlRow)
		atsRows = append(atsRows, atsRow)
	}

	sort.SliceStable(mlRows, func(i, j int) bool {
		return mlRows[i].BetScoreMLHome > mlRows[j].BetScoreMLHome
	})
	sort.SliceStable(atsRows, func(i, j int) bool {
		return atsRows[i].BetScoreATSHome > atsRows[j].BetScoreATSHome
	})

	return mlRows, atsRows
}

// analyzeGame builds both rows for one game. A panic is treated as that
// game's failure, not the batch's.
func (a *Analyzer) analyzeGame(g *models.GameRecord) (ml models.MoneylineRow, ats models.SpreadRow, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.WithFields(logrus.Fields{
					"game_id": g.GameID,
					"panic":   r,
				}).Error("Game analysis failed, skipping game")
			}
			ok = false
		}
	}()

	proj := g.Projection

	// Lines. Moneyline quotes carry American odds in the line field;
	// spread quotes carry the handicap in the line field and odds in the
	// price field.
	liMLHome := signals.FindLine(g.MarketLines, models.MarketMoneyline, models.OptionHome)
	liSpHome := signals.FindLine(g.MarketLines, models.MarketSpread, models.OptionHome)

	var mlHomeOdds, spreadHome, spreadHomePrice *float64
	if liMLHome != nil {
		mlHomeOdds = liMLHome.CurrentLine
	}
	if liSpHome != nil {
		spreadHome = liSpHome.CurrentLine
		spreadHomePrice = liSpHome.CurrentPrice
	}

	impHomeML := oddsmath.AmericanToProbability(mlHomeOdds)
	impHomeCover := oddsmath.AmericanToProbability(spreadHomePrice)

	// Model probabilities. Unknown when projections are incomplete.
	modelHomeWin := a.params.WinProbability(proj.ProjHomePts, proj.ProjAwayPts, proj.ProjTotal)
	modelHomeCover := a.params.CoverProbability(proj.ProjHomePts, proj.ProjAwayPts, spreadHome, proj.ProjTotal)

	edgeHomeML := scoring.Edge(modelHomeWin, impHomeML)
	edgeHomeCover := scoring.Edge(modelHomeCover, impHomeCover)

	// Splits and experts, home side of each market.
	pubHomeML := signals.SplitPct(g.Splits, models.MarketMoneyline, models.OptionHome, signals.PublicPct)
	monHomeML := signals.SplitPct(g.Splits, models.MarketMoneyline, models.OptionHome, signals.MoneyPct)
	pubHomeSp := signals.SplitPct(g.Splits, models.MarketSpread, models.OptionHome, signals.PublicPct)
	monHomeSp := signals.SplitPct(g.Splits, models.MarketSpread, models.OptionHome, signals.MoneyPct)

	expertsMLHome := signals.SumExperts(g.Experts, models.MarketMoneyline, models.OptionHome)
	expertsMLAway := signals.SumExperts(g.Experts, models.MarketMoneyline, models.OptionAway)
	expertsSpHome := signals.SumExperts(g.Experts, models.MarketSpread, models.OptionHome)
	expertsSpAway := signals.SumExperts(g.Experts, models.MarketSpread, models.OptionAway)

	sharpDeltaML := scoring.SharpDelta(monHomeML, pubHomeML)
	sharpDeltaSp := scoring.SharpDelta(monHomeSp, pubHomeSp)

	injHome := signals.InjurySum(g.Injuries, g.HomeTeam)
	injAway := signals.InjurySum(g.Injuries, g.AwayTeam)

	scoreML := scoring.BetScore(edgeHomeML, expertsMLHome, expertsMLAway, sharpDeltaML, injHome, injAway, a.weights)
	scoreATS := scoring.BetScore(edgeHomeCover, expertsSpHome, expertsSpAway, sharpDeltaSp, injHome, injAway, a.weights)

	injHomeRounded := scoring.Round3(injHome)
	injAwayRounded := scoring.Round3(injAway)

	ml = models.MoneylineRow{
		GameID:               g.GameID,
		League:               g.League,
		Date:                 g.Date,
		Away:                 g.AwayTeam,
		Home:                 g.HomeTeam,
		ModelHomeWinProb:     scoring.Round3Ptr(modelHomeWin),
		ImpliedHomeMLProb:    scoring.Round3Ptr(impHomeML),
		EdgeHomeMLProb:       scoring.Round3Ptr(edgeHomeML),
		ExpertsMoneylineHome: expertsMLHome,
		ExpertsMoneylineAway: expertsMLAway,
		PublicHomeMLPct:      scoring.Round3Ptr(pubHomeML),
		MoneyHomeMLPct:       scoring.Round3Ptr(monHomeML),
		InjHomeTotal:         &injHomeRounded,
		InjAwayTotal:         &injAwayRounded,
		BetScoreMLHome:       scoreML,
	}

	ats = models.SpreadRow{
		GameID:              g.GameID,
		League:              g.League,
		Date:                g.Date,
		Away:                g.AwayTeam,
		Home:                g.HomeTeam,
		SpreadHome:          scoring.Round3Ptr(spreadHome),
		SpreadHomePrice:     scoring.Round3Ptr(spreadHomePrice),
		ModelHomeCover:      scoring.Round3Ptr(modelHomeCover),
		ImpHomeCover:        scoring.Round3Ptr(impHomeCover),
		ExpertsSpreadHome:   expertsSpHome,
		ExpertsSpreadAway:   expertsSpAway,
		PublicHomeSpreadPct: scoring.Round3Ptr(pubHomeSp),
		MoneyHomeSpreadPct:  scoring.Round3Ptr(monHomeSp),
		InjHomeTotal:        &injHomeRounded,
		InjAwayTotal:        &injAwayRounded,
		BetScoreATSHome:     scoreATS,
	}

	return ml, ats, true
}
