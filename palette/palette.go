// Package palette loads base16 reference palettes from YAML scheme files.
//
// A scheme file follows the tinted-theming layout: top-level metadata
// (name, slug, variant) plus a palette mapping of base16 role names to hex
// colors. Entries keep their file order so nearest-match tie-breaking stays
// deterministic across runs.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huemap-cli/huemap/color"
	"github.com/huemap-cli/huemap/filesystem"
	"github.com/huemap-cli/huemap/util"
	"gopkg.in/yaml.v3"
)

// ErrEmpty indicates a scheme file whose palette mapping is missing or empty.
// An empty palette makes matching degenerate, so it is rejected up front as a
// configuration error instead of being silently processed.
var ErrEmpty = errors.New("palette is empty")

// Entry is a single named palette color.
type Entry struct {
	Name  string
	Color color.Color
}

// Palette is an immutable, ordered set of named reference colors plus scheme metadata.
type Palette struct {
	Name    string
	Slug    string
	Variant string

	entries []Entry
	index   map[string]color.Color
}

// Load reads and parses a base16 scheme file from the given path.
func Load(path string) (*Palette, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}

	return p, nil
}

// Parse decodes a base16 scheme document.
func Parse(data []byte) (*Palette, error) {
	var doc struct {
		Name    string    `yaml:"name"`
		Slug    string    `yaml:"slug"`
		Variant string    `yaml:"variant"`
		Palette yaml.Node `yaml:"palette"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	p := &Palette{
		Name:    doc.Name,
		Slug:    doc.Slug,
		Variant: doc.Variant,
		index:   make(map[string]color.Color),
	}

	// A yaml.Node keeps mapping pairs in file order, unlike a plain map.
	if doc.Palette.Kind == yaml.MappingNode {
		for i := 0; i < len(doc.Palette.Content)-1; i += 2 {
			name := doc.Palette.Content[i].Value
			value := doc.Palette.Content[i+1].Value

			if _, exists := p.index[name]; exists {
				return nil, fmt.Errorf("duplicate palette entry %q", name)
			}

			c, err := color.Parse(value)
			if err != nil {
				return nil, fmt.Errorf("palette entry %q: %w", name, err)
			}

			p.entries = append(p.entries, Entry{Name: name, Color: c})
			p.index[name] = c
		}
	}

	if len(p.entries) == 0 {
		return nil, ErrEmpty
	}

	return p, nil
}

// Entries returns the palette colors in file order.
func (p *Palette) Entries() []Entry {
	return p.entries
}

// Len returns the number of palette entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Get looks a color up by its base16 role name.
func (p *Palette) Get(name string) (color.Color, bool) {
	c, ok := p.index[name]
	return c, ok
}

// Names returns the palette role names in file order.
func (p *Palette) Names() []string {
	names := make([]string, len(p.entries))
	for i, e := range p.entries {
		names[i] = e.Name
	}
	return names
}

// ByColor builds a lookup from normalized 6-digit hex to role name.
// When several entries share a color, the first in file order wins.
func (p *Palette) ByColor() map[string]string {
	lookup := make(map[string]string, len(p.entries))
	for _, e := range p.entries {
		hex := color.Normalize(e.Color.Hex())
		if _, taken := lookup[hex]; !taken {
			lookup[hex] = e.Name
		}
	}
	return lookup
}

// Context assembles the variable context used to render theme templates:
// theme_name, theme_type and every palette entry as a bare hex value.
func (p *Palette) Context() map[string]string {
	ctx := make(map[string]string, len(p.entries)+2)

	name := p.Name
	if name == "" {
		name = "Unknown Theme"
	}
	variant := p.Variant
	if variant == "" {
		variant = "dark"
	}

	ctx["theme_name"] = name
	ctx["theme_type"] = variant

	for _, e := range p.entries {
		ctx[e.Name] = e.Color.Hex()
	}

	return ctx
}

// OutputName derives the theme filename this palette should build into:
// the scheme slug when present, otherwise a slugified scheme name.
func (p *Palette) OutputName() string {
	if p.Slug != "" {
		return p.Slug + ".json"
	}

	name := util.SanitizeFilename(strings.ToLower(p.Name))
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" {
		name = "theme"
	}
	return name + ".json"
}
