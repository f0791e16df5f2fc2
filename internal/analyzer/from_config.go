package analyzer

import (
	"github.com/yourusername/sportsline-analyzer/internal/config"
	"github.com/yourusername/sportsline-analyzer/internal/oddsmath"
	"github.com/yourusername/sportsline-analyzer/internal/scoring"
)

// FromConfig maps the analysis config section onto model parameters and
// score weights. Zero weights fall back to the documented defaults so a
// sparse config section behaves like no override at all.
func FromConfig(ac config.AnalysisConfig) (oddsmath.ModelParams, scoring.Weights) {
	params := oddsmath.DefaultModelParams()
	if ac.SigmaFloor > 0 {
		params.SigmaFloor = ac.SigmaFloor
	}
	if ac.SigmaDivisor > 0 {
		params.SigmaDivisor = ac.SigmaDivisor
	}
	if ac.SigmaFallback > 0 {
		params.SigmaFallback = ac.SigmaFallback
	}

	weights := scoring.DefaultWeights()
	if ac.EdgeWeight > 0 {
		weights.Edge = ac.EdgeWeight
	}
	if ac.ExpertsWeight > 0 {
		weights.Experts = ac.ExpertsWeight
	}
	if ac.SharpMoneyWeight > 0 {
		weights.SharpMoney = ac.SharpMoneyWeight
	}
	if ac.InjuryWeight > 0 {
		weights.Injury = ac.InjuryWeight
	}

	return params, weights
}
