// Package color defines the canonical color representation shared by the matching,
// templating and reporting pipelines, together with the distance metrics used to
// compare colors against a base16 palette.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// ErrBadNotation indicates a color string outside the recognized closed set of notations.
var ErrBadNotation = errors.New("unsupported color notation")

// Color is an immutable RGB triple with an optional alpha channel.
// The zero value is opaque black.
type Color struct {
	R, G, B uint8

	alpha mo.Option[uint8]
}

// Normalize prepares a color string for comparison: lowercase, trimmed, without the # prefix.
func Normalize(s string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "#")
}

// StripAlpha removes the alpha suffix from an 8-digit normalized hex string.
func StripAlpha(s string) string {
	n := Normalize(s)
	if len(n) == 8 {
		return n[:6]
	}
	return n
}

// Parse decodes a color from one of the recognized hex notations:
// #RGB, #RGBA, #RRGGBB or #RRGGBBAA (case insensitive, # optional).
// Anything else, including out-of-alphabet digits, fails with ErrBadNotation.
func Parse(s string) (Color, error) {
	n := Normalize(s)

	switch len(n) {
	case 3, 4:
		// Expand shorthand notation: each digit doubles.
		var expanded strings.Builder
		for _, r := range n {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		n = expanded.String()
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
	}

	channels := make([]uint8, 0, 4)
	for i := 0; i < len(n); i += 2 {
		v, err := strconv.ParseUint(n[i:i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrBadNotation, s)
		}
		channels = append(channels, uint8(v))
	}

	c := Color{R: channels[0], G: channels[1], B: channels[2]}
	if len(channels) == 4 {
		c.alpha = mo.Some(channels[3])
	}

	return c, nil
}

// Hex returns the canonical 6-digit representation, alpha excluded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the full hex representation, including the alpha suffix when present.
func (c Color) String() string {
	if a, ok := c.alpha.Get(); ok {
		return fmt.Sprintf("%s%02x", c.Hex(), a)
	}
	return c.Hex()
}

// Alpha returns the opacity normalized to [0, 1], if an alpha channel was parsed.
func (c Color) Alpha() mo.Option[float64] {
	if a, ok := c.alpha.Get(); ok {
		return mo.Some(float64(a) / 255)
	}
	return mo.None[float64]()
}

// AlphaHex returns the raw two-digit alpha suffix, if an alpha channel was parsed.
// Templates preserve this suffix byte-for-byte next to the placeholder.
func (c Color) AlphaHex() mo.Option[string] {
	if a, ok := c.alpha.Get(); ok {
		return mo.Some(fmt.Sprintf("%02x", a))
	}
	return mo.None[string]()
}

// Opaque reports whether the color has no alpha channel or is at full opacity.
func (c Color) Opaque() bool {
	a, ok := c.alpha.Get()
	return !ok || a == 0xff
}

// Transparent reports whether the color is fully invisible.
func (c Color) Transparent() bool {
	a, ok := c.alpha.Get()
	return ok && a == 0
}

// WithoutAlpha returns the color with its alpha channel discarded.
func (c Color) WithoutAlpha() Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// RGBEqual reports whether two colors share bit-identical RGB channels, alpha ignored.
func (c Color) RGBEqual(other Color) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}
