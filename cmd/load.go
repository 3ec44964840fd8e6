// Package cmd implements the command-line interface for huemap.
package cmd

import (
	"path/filepath"

	"github.com/huemap-cli/huemap/assets"
	"github.com/huemap-cli/huemap/filesystem"
	"github.com/huemap-cli/huemap/palette"
	"github.com/huemap-cli/huemap/theme"
)

// loadTheme resolves a theme from an explicit path, falling back to the
// bundled example when the path is empty. The second return value is the
// display name used in report headers.
func loadTheme(path string) (*theme.Theme, string, error) {
	if path == "" {
		t, err := theme.Parse(assets.Theme)
		return t, assets.ThemeName, err
	}

	t, err := theme.Load(path)
	return t, filepath.Base(path), err
}

// loadPalette resolves a palette from an explicit path, falling back to the
// bundled example when the path is empty.
func loadPalette(path string) (*palette.Palette, string, error) {
	if path == "" {
		p, err := palette.Parse(assets.Palette)
		return p, assets.PaletteName, err
	}

	p, err := palette.Load(path)
	return p, filepath.Base(path), err
}

func fileExists(path string) (bool, error) {
	return filesystem.API().Exists(path)
}

// writeFile writes output, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if err := filesystem.API().MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return filesystem.API().WriteFile(path, data, 0o644)
}
