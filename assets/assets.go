// Package assets bundles the example theme, palette and template the CLI
// falls back to when no explicit paths are given.
package assets

import _ "embed"

// Bundled example display names, used in help text and report headers.
const (
	ThemeName    = "rose-pine-moon.json (bundled)"
	PaletteName  = "rose-pine-moon.yml (bundled)"
	TemplateName = "vscode.json.mustache (bundled)"
)

// Theme is the bundled example VS Code theme.
//
//go:embed rose-pine-moon.json
var Theme []byte

// Palette is the bundled example base16 scheme.
//
//go:embed rose-pine-moon.yml
var Palette []byte

// Template is the bundled default VS Code theme template.
//
//go:embed vscode.json.mustache
var Template []byte
