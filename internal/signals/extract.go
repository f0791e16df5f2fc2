// Package signals extracts market-line, split, expert, and injury signals
// from a game's input lists.
//
// Lookup semantics are deliberately asymmetric: line and split lookups take
// the FIRST item matching (market, option) and silently ignore later
// duplicates, while expert and injury lookups aggregate across all matches.
// The asymmetry is load-bearing for callers; do not "fix" it.
package signals

import "github.com/yourusername/sportsline-analyzer/internal/models"

// SplitField selects which percentage to read from a SplitItem.
type SplitField int

const (
	PublicPct SplitField = iota
	MoneyPct
)

// FindLine returns the first line item matching (market, option), or nil.
// Not finding a line is a valid outcome, not an error.
func FindLine(lines []models.LineItem, market models.Market, option models.Option) *models.LineItem {
	for i := range lines {
		if lines[i].Market == market && lines[i].Option == option {
			return &lines[i]
		}
	}
	return nil
}

// SumExperts returns the total expert pick count for (market, option).
// Items with the same key are additive.
func SumExperts(experts []models.ExpertItem, market models.Market, option models.Option) int {
	total := 0
	for _, e := range experts {
		if e.Market == market && e.Option == option {
			total += e.Count
		}
	}
	return total
}

// SplitPct returns the requested percentage from the first split matching
// (market, option), or nil if no split matches or the field is absent.
func SplitPct(splits []models.SplitItem, market models.Market, option models.Option, field SplitField) *float64 {
	for i := range splits {
		if splits[i].Market == market && splits[i].Option == option {
			if field == MoneyPct {
				return splits[i].MoneyPct
			}
			return splits[i].PublicPct
		}
	}
	return nil
}

// InjurySum returns the summed injury impact for a team. Team names are
// compared exactly, no normalization. Missing impacts count as 0.
func InjurySum(injuries []models.InjuryItem, team string) float64 {
	sum := 0.0
	for _, inj := range injuries {
		if inj.Team != team {
			continue
		}
		if inj.Impact0to1 != nil {
			sum += *inj.Impact0to1
		}
	}
	return sum
}
