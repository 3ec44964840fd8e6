package template

import (
	"fmt"
	"regexp"

	"github.com/cbroglie/mustache"
	"github.com/huemap-cli/huemap/filesystem"
	"github.com/huemap-cli/huemap/palette"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// placeholderPattern recognizes simple interpolation tags; sections and
// partials never appear in generated templates.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// BuildFile reads a template from the filesystem and renders it against the palette.
func BuildFile(path string, p *palette.Palette) ([]byte, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}

	out, err := Build(data, p)
	if err != nil {
		return nil, fmt.Errorf("render template %s: %w", path, err)
	}

	return out, nil
}

// Build renders template source against the palette context. Placeholders
// referencing names absent from the palette are an undefined-reference
// error, reported with a closest-name suggestion before any rendering
// happens.
func Build(source []byte, p *palette.Palette) ([]byte, error) {
	if p == nil || p.Len() == 0 {
		return nil, palette.ErrEmpty
	}

	context := p.Context()

	if err := validatePlaceholders(source, context); err != nil {
		return nil, err
	}

	rendered, err := mustache.Render(string(source), context)
	if err != nil {
		return nil, err
	}

	return []byte(rendered), nil
}

func validatePlaceholders(source []byte, context map[string]string) error {
	for _, m := range placeholderPattern.FindAllSubmatch(source, -1) {
		name := string(m[1])
		if _, ok := context[name]; !ok {
			return fmt.Errorf(
				"undefined placeholder %q, did you mean %q?",
				name,
				closestName(name, lo.Keys(context)),
			)
		}
	}
	return nil
}

func closestName(name string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}
