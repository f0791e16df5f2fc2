// Package oddsmath converts market odds to probabilities and provides the
// Gaussian win/cover probability model over projected point differentials.
package oddsmath

import "math"

// ModelParams are the named knobs of the probability model. Defaults match
// the documented formula contract; tune via config, not by editing call
// sites.
type ModelParams struct {
	// SigmaFloor is the minimum standard deviation of the margin model.
	SigmaFloor float64
	// SigmaDivisor scales the game total into a standard deviation
	// (higher total, higher variance, flatter win curve).
	SigmaDivisor float64
	// SigmaFallback is used when no total is available.
	SigmaFallback float64
}

// DefaultModelParams returns the documented model parameters.
func DefaultModelParams() ModelParams {
	return ModelParams{
		SigmaFloor:    3.0,
		SigmaDivisor:  6.0,
		SigmaFallback: 7.5,
	}
}

// AmericanToProbability converts American odds to raw implied probability.
// No vig removal: two-sided market probabilities will not sum to 1. Returns
// nil for absent or non-finite odds.
func AmericanToProbability(odds *float64) *float64 {
	if odds == nil {
		return nil
	}
	o := *odds
	if math.IsNaN(o) || math.IsInf(o, 0) {
		return nil
	}
	var p float64
	if o < 0 {
		p = -o / (-o + 100.0)
	} else {
		p = 100.0 / (o + 100.0)
	}
	return &p
}

// NormalCDF is the standard normal cumulative distribution function.
func NormalCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}

// WinProbability returns P(home margin > 0) under Normal(mu, sigma) with
// mu = projHome - projAway. Nil if either projection is absent.
func (p ModelParams) WinProbability(projHome, projAway, total *float64) *float64 {
	if projHome == nil || projAway == nil {
		return nil
	}
	mu := *projHome - *projAway
	prob := 1.0 - NormalCDF((0.0-mu)/p.sigma(total))
	return &prob
}

// CoverProbability returns P(home margin > -spreadHome) under the same
// Normal model. spreadHome is negative when home is favored, per American
// spread quoting. Nil if any required input is absent.
func (p ModelParams) CoverProbability(projHome, projAway, spreadHome, total *float64) *float64 {
	if projHome == nil || projAway == nil || spreadHome == nil {
		return nil
	}
	mu := *projHome - *projAway
	thresh := -*spreadHome
	prob := 1.0 - NormalCDF((thresh-mu)/p.sigma(total))
	return &prob
}

func (p ModelParams) sigma(total *float64) float64 {
	if total == nil || *total == 0 {
		return math.Max(p.SigmaFloor, p.SigmaFallback)
	}
	return math.Max(p.SigmaFloor, *total/p.SigmaDivisor)
}

// Clamp bounds v to [lo, hi], treating absent or NaN values as 0.
func Clamp(v *float64, lo, hi float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0.0
	}
	return math.Max(lo, math.Min(hi, *v))
}
