// Package theme loads VS Code theme JSON files and extracts their color tokens.
//
// Two sections carry colors: the flat "colors" UI mapping and the
// "tokenColors" list of syntax scopes. Both are flattened into a single
// ordered token list keyed by a dotted path, while the raw document is kept
// around for template generation.
package theme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/huemap-cli/huemap/color"
	"github.com/huemap-cli/huemap/filesystem"
)

// Token is a single named color extracted from a theme file.
type Token struct {
	// Name is the dotted token path, e.g. "colors.editor.background"
	// or "tokenColors[keyword.operator].foreground".
	Name string
	// Raw is the color literal exactly as written in the file.
	Raw string
	// Color is the parsed canonical value.
	Color color.Color
}

// Theme is an immutable set of color tokens plus the raw decoded document.
type Theme struct {
	Name string

	tokens []Token
	doc    map[string]any
}

// Load reads and parses a VS Code theme file from the given path.
func Load(path string) (*Theme, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	return t, nil
}

// Parse decodes a VS Code theme JSON document and extracts its color tokens.
func Parse(data []byte) (*Theme, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	t := &Theme{doc: doc}

	if name, ok := doc["name"].(string); ok {
		t.Name = name
	}

	if err := t.extractColors(); err != nil {
		return nil, err
	}
	if err := t.extractTokenColors(); err != nil {
		return nil, err
	}

	return t, nil
}

// extractColors flattens the "colors" UI mapping. Keys are sorted so the
// token order does not depend on map iteration.
func (t *Theme) extractColors() error {
	colors, ok := t.doc["colors"].(map[string]any)
	if !ok {
		return nil
	}

	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		raw, ok := colors[k].(string)
		if !ok || !strings.HasPrefix(raw, "#") {
			continue
		}

		if err := t.appendToken("colors."+k, raw); err != nil {
			return err
		}
	}

	return nil
}

// extractTokenColors walks the "tokenColors" scope list in document order.
func (t *Theme) extractTokenColors() error {
	tokenColors, ok := t.doc["tokenColors"].([]any)
	if !ok {
		return nil
	}

	for idx, item := range tokenColors {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		settings, ok := entry["settings"].(map[string]any)
		if !ok {
			continue
		}

		scope := scopeLabel(entry["scope"], idx)

		for _, role := range []string{"foreground", "background"} {
			raw, ok := settings[role].(string)
			if !ok || !strings.HasPrefix(raw, "#") {
				continue
			}

			name := fmt.Sprintf("tokenColors[%s].%s", scope, role)
			if err := t.appendToken(name, raw); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *Theme) appendToken(name, raw string) error {
	c, err := color.Parse(raw)
	if err != nil {
		return fmt.Errorf("token %q: %w", name, err)
	}

	t.tokens = append(t.tokens, Token{Name: name, Raw: raw, Color: c})
	return nil
}

// scopeLabel renders a tokenColors scope field, which may be a string,
// a list of strings, or missing entirely.
func scopeLabel(scope any, idx int) string {
	switch s := scope.(type) {
	case string:
		return s
	case []any:
		parts := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				parts = append(parts, str)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return fmt.Sprintf("token[%d]", idx)
}

// Tokens returns the extracted color tokens in extraction order.
func (t *Theme) Tokens() []Token {
	return t.tokens
}

// Document returns the raw decoded theme document.
func (t *Theme) Document() map[string]any {
	return t.doc
}
