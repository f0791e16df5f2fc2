// Package scoring computes model-vs-market edges and the composite BetScore.
package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/sportsline-analyzer/internal/oddsmath"
)

// EdgeClampWindow bounds the edge term before scaling: an edge beyond
// ±15 percentage points saturates the term.
const EdgeClampWindow = 0.15

// Weights are the composite score weights. They sum to 75; the remaining
// 25 points of headroom are reserved for future signals (weather, schedule
// spots). Fixed at startup, overridable via config, never at request time.
type Weights struct {
	Edge       float64
	Experts    float64
	SharpMoney float64
	Injury     float64
}

// DefaultWeights returns the documented weights.
func DefaultWeights() Weights {
	return Weights{
		Edge:       35.0,
		Experts:    15.0,
		SharpMoney: 15.0,
		Injury:     10.0,
	}
}

// Edge is the model probability minus the market-implied probability.
// Unknown if either operand is unknown.
func Edge(model, implied *float64) *float64 {
	if model == nil || implied == nil {
		return nil
	}
	e := *model - *implied
	return &e
}

// SharpDelta is money percentage minus public percentage for the home side:
// a positive delta suggests informed money leaning home.
func SharpDelta(money, public *float64) *float64 {
	if money == nil || public == nil {
		return nil
	}
	d := *money - *public
	return &d
}

// BetScore combines edge, expert consensus, sharp-money delta, and injury
// differential into one transparent composite, rounded to 3 decimals.
// An unknown edge scores as a neutral edge (the clamp maps it to 0); an
// unknown sharp delta contributes 0.
func BetScore(edge *float64, expertsHome, expertsAway int, sharpDelta *float64, injHome, injAway float64, w Weights) float64 {
	denom := float64(expertsHome + expertsAway)
	if denom <= 0 {
		denom = 1.0
	}
	expertsTerm := float64(expertsHome-expertsAway) / denom

	sharp := 0.0
	if sharpDelta != nil {
		sharp = *sharpDelta
	}

	score := w.Edge*(oddsmath.Clamp(edge, -EdgeClampWindow, EdgeClampWindow)/EdgeClampWindow) +
		w.Experts*expertsTerm +
		w.SharpMoney*(sharp/100.0) +
		w.Injury*(injAway-injHome)

	return Round3(score)
}

// Round3 rounds to 3 decimal places, the precision of every float field in
// the output rows.
func Round3(v float64) float64 {
	return decimal.NewFromFloat(v).Round(3).InexactFloat64()
}

// Round3Ptr rounds an optional value, preserving unknown.
func Round3Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := Round3(*v)
	return &r
}
