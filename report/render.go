package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/huemap-cli/huemap/color"
	"github.com/huemap-cli/huemap/key"
	"github.com/huemap-cli/huemap/match"
	"github.com/huemap-cli/huemap/palette"
	"github.com/huemap-cli/huemap/style"
	"github.com/huemap-cli/huemap/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/viper"
)

const fallbackWidth = 80

// Render writes the human-readable analysis report: one group per palette
// entry in use, an unmapped section with closest matches, and a summary
// panel.
func Render(w io.Writer, o *Output, pal *palette.Palette) {
	width, _, err := util.TerminalSize()
	if err != nil || width <= 0 {
		width = fallbackWidth
	}

	r := renderer{
		out:     w,
		output:  o,
		palette: pal,
		width:   width,
		perKey:  viper.GetInt(key.ReportKeysPerColor),
		showRGB: viper.GetBool(key.ReportShowRGB),
	}

	r.title()
	r.mapped()
	r.unmapped()
	r.summary()
}

type renderer struct {
	out     io.Writer
	output  *Output
	palette *palette.Palette
	width   int
	perKey  int
	showRGB bool
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) title() {
	box := style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ActiveBorderColor).
		Padding(0, 1)

	heading := fmt.Sprintf("%s -> %s mapping analysis", r.output.Theme, r.output.Palette)
	r.printf("\n%s\n", box.Render(style.Bold(heading)))
}

// mapped prints one group per palette entry referenced by the theme,
// with alpha variations listed under their base color.
func (r *renderer) mapped() {
	grouped := make(map[string][]match.Result)
	for _, result := range r.output.Results {
		if result.Kind == match.Unmatched {
			continue
		}
		grouped[result.Entry] = append(grouped[result.Entry], result)
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entryColor, _ := r.palette.Get(name)
		hex := entryColor.Hex()
		colored := style.Fg(lipgloss.Color(hex))

		results := grouped[name]

		r.printf("\n%s %s\n", style.Swatch(hex), colored(style.Bold(name)))
		r.printf("  Color: %s\n", colored(hex))
		r.printf("  %s\n", style.Faint("Used in "+util.Quantify(len(results), "location", "locations")+":"))

		r.variations(results, hex)
	}
}

// variations groups results under an entry by their literal value, so alpha
// variants show up labeled next to the exact uses.
func (r *renderer) variations(results []match.Result, baseHex string) {
	byLiteral := make(map[string][]match.Result)
	order := make([]string, 0)
	for _, result := range results {
		if _, seen := byLiteral[result.Color]; !seen {
			order = append(order, result.Color)
		}
		byLiteral[result.Color] = append(byLiteral[result.Color], result)
	}

	for _, literal := range order {
		group := byLiteral[literal]

		if color.Normalize(literal) != color.Normalize(baseHex) {
			r.printf("    %s %s\n", style.Faint("Variation:"), style.Fg(lipgloss.Color(baseHex))(literal))
		}

		r.keys(group, r.perKey, "      ")
	}
}

func (r *renderer) keys(group []match.Result, limit int, indent string) {
	for i, result := range group {
		if i == limit {
			remaining := len(group) - limit
			r.printf("%s%s\n", indent, style.Faint(style.Italic("... and "+util.Quantify(remaining, "more", "more"))))
			return
		}

		wrapped := wordwrap.String("- "+result.Token, util.Max(r.width-len(indent), 20))
		for _, line := range strings.Split(wrapped, "\n") {
			r.printf("%s%s\n", indent, style.Faint(line))
		}
	}
}

// unmapped prints colors with no palette hit, most used first, each with its
// closest entry and similarity classification.
func (r *renderer) unmapped() {
	byLiteral := make(map[string][]match.Result)
	for _, result := range r.output.Results {
		if result.Kind != match.Unmatched {
			continue
		}
		byLiteral[result.Color] = append(byLiteral[result.Color], result)
	}

	if len(byLiteral) == 0 {
		return
	}

	literals := make([]string, 0, len(byLiteral))
	for literal := range byLiteral {
		literals = append(literals, literal)
	}
	sort.Slice(literals, func(i, j int) bool {
		a, b := byLiteral[literals[i]], byLiteral[literals[j]]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return literals[i] < literals[j]
	})

	r.printf("\n%s\n", style.Fg(style.WarningColor)(style.Bold("Unmapped Colors")))

	for _, literal := range literals {
		group := byLiteral[literal]
		first := group[0]

		closestColor, _ := r.palette.Get(first.Entry)
		closestHex := closestColor.Hex()
		swatchHex := "#" + color.StripAlpha(literal)

		r.printf("\n  %s Color: %s\n", style.Swatch(swatchHex), style.Fg(lipgloss.Color(swatchHex))(literal))
		r.printf("  %s\n", style.Faint("Used in "+util.Quantify(len(group), "location", "locations")+":"))
		r.printf("  %s %s %s %s\n",
			style.Faint("Closest match:"),
			style.Fg(lipgloss.Color(closestHex))(first.Entry),
			style.Faint("->"),
			style.Fg(lipgloss.Color(closestHex))(closestHex),
		)

		distance := fmt.Sprintf("Delta E: %s (%s)", tierStyle(first.Tier)(fmt.Sprintf("%.2f", first.DeltaE)), first.Tier)
		if r.showRGB {
			distance += style.Faint(fmt.Sprintf(", RGB distance: %.2f", first.RGBDistance))
		}
		r.printf("    %s\n", distance)

		r.keys(group, 3, "    ")
	}
}

func tierStyle(tier match.Tier) func(string) string {
	switch tier {
	case match.TierVerySimilar:
		return style.Fg(style.SuccessColor)
	case match.TierDifferent:
		return style.Fg(style.WarningColor)
	default:
		return style.Fg(style.ErrorColor)
	}
}

func (r *renderer) summary() {
	s := r.output.Summary

	lines := []string{
		fmt.Sprintf("Total theme keys: %d", s.TotalTokens),
		fmt.Sprintf("Mapped to palette: %d", s.Matched+s.AlphaVariants),
		fmt.Sprintf("Alpha variants: %d", s.AlphaVariants),
		fmt.Sprintf("Unmapped colors: %d", s.Unmatched),
		"",
		fmt.Sprintf("Palette colors used: %d/%d", s.EntriesUsed, s.EntriesTotal),
	}

	if s.UniqueUnmatched > 0 {
		lines = append(lines,
			"",
			"Unmapped color similarity:",
			fmt.Sprintf("  - Very similar (Delta E < 10): %d/%d", s.VerySimilar, s.UniqueUnmatched),
			fmt.Sprintf("  - Different (Delta E 10-50): %d/%d", s.Different, s.UniqueUnmatched),
			fmt.Sprintf("  - Very different (Delta E > 50): %d/%d", s.VeryDifferent, s.UniqueUnmatched),
		)
	}

	if len(s.RepeatedColors) > 0 {
		lines = append(lines, "", "Most repeated colors:")
		for _, repeated := range s.RepeatedColors {
			lines = append(lines, fmt.Sprintf("  - #%s: used %d times", repeated.Color, repeated.Count))
		}
	}

	box := style.New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.SuccessColor).
		Padding(1, 2).
		Margin(1, 0)

	content := lipgloss.JoinVertical(lipgloss.Left,
		style.Bold("Summary Statistics"),
		"",
		strings.Join(lines, "\n"),
	)

	r.printf("%s\n", box.Render(content))
}
