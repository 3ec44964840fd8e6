package match

import (
	"sort"

	"github.com/huemap-cli/huemap/color"
	"github.com/huemap-cli/huemap/palette"
)

// RepeatedColor records a color literal reused across several theme tokens.
type RepeatedColor struct {
	Color string `json:"color" jsonschema:"description=Normalized hex value."`
	Count int    `json:"count" jsonschema:"description=Number of tokens using this color."`
}

// Summary aggregates statistics over one matching run.
type Summary struct {
	TotalTokens   int `json:"total_tokens"`
	Matched       int `json:"matched"`
	AlphaVariants int `json:"alpha_variants"`
	Unmatched     int `json:"unmatched"`

	EntriesUsed  int `json:"entries_used" jsonschema:"description=Palette entries referenced by at least one token."`
	EntriesTotal int `json:"entries_total"`

	// Unique unmatched colors bucketed by tier.
	UniqueUnmatched  int `json:"unique_unmatched"`
	VerySimilar      int `json:"very_similar"`
	Different        int `json:"different"`
	VeryDifferent    int `json:"very_different"`

	RepeatedColors []RepeatedColor `json:"repeated_colors" jsonschema:"description=Most reused color literals, descending."`
}

// Summarize derives run statistics from the classification results.
func Summarize(results []Result, p *palette.Palette) Summary {
	s := Summary{
		TotalTokens:  len(results),
		EntriesTotal: p.Len(),
	}

	usedEntries := make(map[string]struct{})
	unmatchedTiers := make(map[string]Tier)
	frequency := make(map[string]int)

	for _, r := range results {
		frequency[color.Normalize(r.Color)]++

		switch r.Kind {
		case Exact:
			s.Matched++
			usedEntries[r.Entry] = struct{}{}
		case AlphaVariant:
			s.AlphaVariants++
			usedEntries[r.Entry] = struct{}{}
		case Unmatched:
			s.Unmatched++
			unmatchedTiers[color.StripAlpha(r.Color)] = r.Tier
		}
	}

	s.EntriesUsed = len(usedEntries)

	s.UniqueUnmatched = len(unmatchedTiers)
	for _, tier := range unmatchedTiers {
		switch tier {
		case TierVerySimilar:
			s.VerySimilar++
		case TierDifferent:
			s.Different++
		case TierVeryDifferent:
			s.VeryDifferent++
		}
	}

	for hex, count := range frequency {
		if count > 1 {
			s.RepeatedColors = append(s.RepeatedColors, RepeatedColor{Color: hex, Count: count})
		}
	}
	sort.Slice(s.RepeatedColors, func(i, j int) bool {
		if s.RepeatedColors[i].Count != s.RepeatedColors[j].Count {
			return s.RepeatedColors[i].Count > s.RepeatedColors[j].Count
		}
		return s.RepeatedColors[i].Color < s.RepeatedColors[j].Color
	})
	if len(s.RepeatedColors) > 3 {
		s.RepeatedColors = s.RepeatedColors[:3]
	}

	return s
}
