package color

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// MaxRGBDistance is the diagonal of the RGB cube, the largest possible Euclidean distance.
var MaxRGBDistance = math.Sqrt(3 * 255 * 255)

// RGBDistance computes the Euclidean distance between two colors in RGB space.
// Fast but not perceptually uniform; range [0, MaxRGBDistance].
func RGBDistance(a, b Color) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DeltaE computes the CIE Delta E 2000 difference between two colors.
// Colors are converted through sRGB into CIE Lab and compared with the full
// published formula, including the hue and chroma rotation terms. Rough scale:
// below 10 the colors read as very similar, 10-50 as different, above 50 as
// very different.
func DeltaE(a, b Color) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
