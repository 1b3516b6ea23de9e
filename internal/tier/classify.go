// Package tier assigns difficulty tiers to normalized words.
package tier

import (
	"github.com/heartmarshall/vocabdeck/internal/domain"
)

// Defaults applied when a word is missing from the reference maps.
// The frequency default sits mid-range, biasing unknown words toward tier 2.
const (
	DefaultFrequency = 3.5
	HighLookupCount  = 5
	rareThreshold    = 4.0
	commonThreshold  = 5.0
)

// Classify returns the difficulty tier for a word. Rules apply in order:
//
//  1. Tier 1 — advanced (≥B2) and rare (score < 4), or looked up ≥5 times.
//  2. Tier 2 — frequency score < 5.
//  3. Tier 3 — everything else.
func Classify(level domain.Level, frequencyScore float64, lookupCount int) domain.Tier {
	advancedAndRare := level.Rank() >= domain.LevelB2.Rank() && frequencyScore < rareThreshold
	if advancedAndRare || lookupCount >= HighLookupCount {
		return domain.Tier1
	}
	if frequencyScore < commonThreshold {
		return domain.Tier2
	}
	return domain.Tier3
}
