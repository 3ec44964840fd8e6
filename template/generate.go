// Package template inverts and replays the color matching pipeline: Generate
// turns a concrete theme into a reusable mustache template by replacing
// palette-matched color literals with named placeholders, and Build renders
// such a template back into a concrete theme from any palette.
package template

import (
	"encoding/json"

	"github.com/huemap-cli/huemap/color"
	"github.com/huemap-cli/huemap/match"
	"github.com/huemap-cli/huemap/palette"
	"github.com/huemap-cli/huemap/theme"
)

// FuzzyReplacement records a non-exact color substituted under a Delta E threshold.
type FuzzyReplacement struct {
	Color  string
	Entry  string
	DeltaE float64
}

// Generate renders the theme document as an indented JSON template in which
// every color literal matching a palette entry is replaced by a
// "{{ baseXX }}" placeholder. Alpha suffixes survive as literals next to the
// placeholder ("{{ base0A }}e6") so rebuilding reproduces the exact original
// value. With a positive threshold, colors within that Delta E of their
// closest entry are replaced as well; the substitutions are reported back so
// the caller can surface them.
func Generate(t *theme.Theme, p *palette.Palette, threshold float64) ([]byte, []FuzzyReplacement, error) {
	if p == nil || p.Len() == 0 {
		return nil, nil, palette.ErrEmpty
	}

	g := &generator{
		palette:   p,
		byColor:   p.ByColor(),
		threshold: threshold,
	}

	doc := t.Document()
	out := make(map[string]any, len(doc))

	for k, v := range doc {
		switch k {
		case "name":
			out[k] = rawPlaceholder("theme_name")
		case "type":
			out[k] = rawPlaceholder("theme_type")
		default:
			out[k] = g.walk(v)
		}
	}

	rendered, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return nil, nil, err
	}

	return rendered, g.fuzzy, nil
}

type generator struct {
	palette   *palette.Palette
	byColor   map[string]string
	threshold float64
	fuzzy     []FuzzyReplacement
}

// walk recursively rewrites color literals inside arbitrary JSON values.
func (g *generator) walk(value any) any {
	switch v := value.(type) {
	case string:
		if len(v) > 0 && v[0] == '#' {
			return g.replace(v)
		}
		return v
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = g.walk(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = g.walk(item)
		}
		return out
	default:
		return value
	}
}

func (g *generator) replace(literal string) string {
	c, err := color.Parse(literal)
	if err != nil {
		// Not one of the recognized notations: leave untouched.
		return literal
	}

	// Fully transparent literals stay literal, whatever their RGB happens to be.
	if c.Transparent() {
		return literal
	}

	stripped := color.Normalize(c.Hex())

	if name, ok := g.byColor[stripped]; ok {
		return placeholder(name) + c.AlphaHex().OrElse("")
	}

	if g.threshold > 0 {
		name, _, deltaE := match.Closest(c, g.palette, match.MetricDeltaE)
		if deltaE <= g.threshold {
			g.fuzzy = append(g.fuzzy, FuzzyReplacement{Color: literal, Entry: name, DeltaE: deltaE})
			return placeholder(name) + c.AlphaHex().OrElse("")
		}
	}

	return literal
}

func placeholder(name string) string {
	return "{{ " + name + " }}"
}

// rawPlaceholder emits a triple-mustache tag. Metadata like the scheme name
// may contain characters the renderer would otherwise HTML-escape.
func rawPlaceholder(name string) string {
	return "{{{ " + name + " }}}"
}
