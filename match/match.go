// Package match classifies theme tokens against a base16 palette.
//
// Every token receives exactly one classification: an exact palette hit, an
// alpha-channel variant of a palette color, or an unmatched color annotated
// with its closest palette entry under the configured distance metric.
// Matching is a pure function of (theme, palette): no state, no caching,
// identical inputs always produce identical results.
package match

import (
	"fmt"

	"github.com/huemap-cli/huemap/color"
	"github.com/huemap-cli/huemap/palette"
	"github.com/huemap-cli/huemap/theme"
)

// Kind discriminates the three possible classifications.
type Kind string

const (
	Exact        Kind = "exact"
	AlphaVariant Kind = "alpha-variant"
	Unmatched    Kind = "unmatched"
)

// Metric selects the distance function for the nearest-neighbor scan.
type Metric string

const (
	MetricDeltaE Metric = "delta-e"
	MetricRGB    Metric = "rgb"
)

// ParseMetric validates a metric identifier from flags or configuration.
func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricDeltaE, MetricRGB:
		return Metric(s), nil
	default:
		return "", fmt.Errorf("unknown metric %q, expected %q or %q", s, MetricDeltaE, MetricRGB)
	}
}

// Result is the classification of a single theme token.
type Result struct {
	Token string `json:"token" jsonschema:"description=Dotted theme token path."`
	Color string `json:"color" jsonschema:"description=Color literal as written in the theme file."`
	Kind  Kind   `json:"kind" jsonschema:"description=Classification: exact, alpha-variant or unmatched."`

	// Entry is the matched palette name, or for unmatched tokens the closest one.
	Entry string `json:"entry" jsonschema:"description=Palette entry name (matched or closest)."`

	// Alpha is the normalized opacity of an alpha variant.
	Alpha *float64 `json:"alpha,omitempty" jsonschema:"description=Opacity in [0,1] for alpha variants."`

	// Distances and tier are populated for unmatched tokens only.
	RGBDistance float64 `json:"rgb_distance,omitempty" jsonschema:"description=Euclidean RGB distance to the closest entry."`
	DeltaE      float64 `json:"delta_e,omitempty" jsonschema:"description=CIE Delta E 2000 distance to the closest entry."`
	Tier        Tier    `json:"tier,omitempty" jsonschema:"description=Similarity tier derived from Delta E."`
}

// Run classifies every token of the theme against the palette.
// A nil or empty palette is a configuration error: no partial results are returned.
func Run(t *theme.Theme, p *palette.Palette, metric Metric) ([]Result, error) {
	if p == nil || p.Len() == 0 {
		return nil, palette.ErrEmpty
	}

	byColor := p.ByColor()
	results := make([]Result, 0, len(t.Tokens()))

	for _, token := range t.Tokens() {
		results = append(results, classify(token, p, byColor, metric))
	}

	return results, nil
}

func classify(token theme.Token, p *palette.Palette, byColor map[string]string, metric Metric) Result {
	result := Result{Token: token.Name, Color: token.Raw}

	stripped := color.Normalize(token.Color.Hex())
	if name, ok := byColor[stripped]; ok {
		result.Entry = name

		if token.Color.Opaque() {
			result.Kind = Exact
			return result
		}

		result.Kind = AlphaVariant
		alpha := token.Color.Alpha().MustGet()
		result.Alpha = &alpha
		return result
	}

	result.Kind = Unmatched
	result.Entry, result.RGBDistance, result.DeltaE = Closest(token.Color, p, metric)
	result.Tier = ClassifyTier(result.DeltaE)
	return result
}

// Closest scans the palette for the entry nearest to c under the given metric.
// Ties resolve to the first entry in palette file order; both distances are
// reported for the selected entry regardless of which metric drove the scan.
func Closest(c color.Color, p *palette.Palette, metric Metric) (name string, rgbDist, deltaE float64) {
	target := c.WithoutAlpha()

	best := -1.0
	for _, entry := range p.Entries() {
		var d float64
		switch metric {
		case MetricRGB:
			d = color.RGBDistance(target, entry.Color)
		default:
			d = color.DeltaE(target, entry.Color)
		}

		if best < 0 || d < best {
			best = d
			name = entry.Name
			rgbDist = color.RGBDistance(target, entry.Color)
			deltaE = color.DeltaE(target, entry.Color)
		}
	}

	return name, rgbDist, deltaE
}
