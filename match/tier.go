package match

// Tier is the human-readable similarity bucket for an unmatched color,
// derived from its Delta E 2000 distance to the closest palette entry.
type Tier string

const (
	TierVerySimilar   Tier = "very similar"
	TierDifferent     Tier = "different"
	TierVeryDifferent Tier = "very different"
)

// Tier boundaries. Both are inclusive on the "different" side: a Delta E of
// exactly 10 or exactly 50 classifies as different.
const (
	tierSimilarBelow  = 10.0
	tierDifferentUpTo = 50.0
)

// ClassifyTier maps a Delta E 2000 value to its similarity tier.
func ClassifyTier(deltaE float64) Tier {
	switch {
	case deltaE < tierSimilarBelow:
		return TierVerySimilar
	case deltaE <= tierDifferentUpTo:
		return TierDifferent
	default:
		return TierVeryDifferent
	}
}
