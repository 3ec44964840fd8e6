package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should decode 6-digit notation", func() {
			c, err := Parse("#ea9a97")
			So(err, ShouldBeNil)
			So(c.R, ShouldEqual, 0xea)
			So(c.G, ShouldEqual, 0x9a)
			So(c.B, ShouldEqual, 0x97)
			So(c.Opaque(), ShouldBeTrue)
		})

		Convey("Should decode 8-digit notation with alpha", func() {
			c, err := Parse("#ea9a97e6")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#ea9a97")
			So(c.Opaque(), ShouldBeFalse)
			So(c.AlphaHex().MustGet(), ShouldEqual, "e6")
		})

		Convey("Should expand 3-digit shorthand", func() {
			c, err := Parse("#f80")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#ff8800")
		})

		Convey("Should expand 4-digit shorthand with alpha", func() {
			c, err := Parse("#f808")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#ff8800")
			So(c.AlphaHex().MustGet(), ShouldEqual, "88")
		})

		Convey("Should accept uppercase and a missing # prefix", func() {
			a, err := Parse("FF0000")
			So(err, ShouldBeNil)
			b, err := Parse("#ff0000")
			So(err, ShouldBeNil)
			So(a.RGBEqual(b), ShouldBeTrue)
		})

		Convey("Should reject unsupported lengths", func() {
			for _, s := range []string{"", "#ff00f", "#ff00ff0", "#ff00ff000", "red"} {
				_, err := Parse(s)
				So(err, ShouldWrap, ErrBadNotation)
			}
		})

		Convey("Should reject out-of-alphabet digits", func() {
			_, err := Parse("#gg0000")
			So(err, ShouldWrap, ErrBadNotation)
		})
	})
}

func TestAlpha(t *testing.T) {
	Convey("Alpha channel", t, func() {
		Convey("Should normalize to [0, 1]", func() {
			c, err := Parse("#ff000080")
			So(err, ShouldBeNil)
			So(c.Alpha().MustGet(), ShouldAlmostEqual, 0x80/255.0, 1e-9)
		})

		Convey("Should be absent for 6-digit colors", func() {
			c, err := Parse("#ff0000")
			So(err, ShouldBeNil)
			So(c.Alpha().IsAbsent(), ShouldBeTrue)
			So(c.AlphaHex().IsAbsent(), ShouldBeTrue)
		})

		Convey("Full opacity should still count as opaque", func() {
			c, err := Parse("#ff0000ff")
			So(err, ShouldBeNil)
			So(c.Opaque(), ShouldBeTrue)
			So(c.Transparent(), ShouldBeFalse)
		})

		Convey("Zero alpha should be transparent", func() {
			c, err := Parse("#ff000000")
			So(err, ShouldBeNil)
			So(c.Transparent(), ShouldBeTrue)
			So(c.Opaque(), ShouldBeFalse)
		})
	})
}

func TestStringForms(t *testing.T) {
	Convey("String forms", t, func() {
		opaque, err := Parse("#EA9A97")
		So(err, ShouldBeNil)
		translucent, err := Parse("#EA9A97E6")
		So(err, ShouldBeNil)

		Convey("Hex is canonical lowercase without alpha", func() {
			So(opaque.Hex(), ShouldEqual, "#ea9a97")
			So(translucent.Hex(), ShouldEqual, "#ea9a97")
		})

		Convey("String keeps the alpha suffix", func() {
			So(opaque.String(), ShouldEqual, "#ea9a97")
			So(translucent.String(), ShouldEqual, "#ea9a97e6")
		})

		Convey("WithoutAlpha drops the channel", func() {
			So(translucent.WithoutAlpha().String(), ShouldEqual, "#ea9a97")
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		So(Normalize("  #FF0000 "), ShouldEqual, "ff0000")
		So(Normalize("ff0000"), ShouldEqual, "ff0000")
	})

	Convey("StripAlpha", t, func() {
		So(StripAlpha("#ff000080"), ShouldEqual, "ff0000")
		So(StripAlpha("#ff0000"), ShouldEqual, "ff0000")
	})
}

func TestRGBDistance(t *testing.T) {
	Convey("RGBDistance", t, func() {
		black, _ := Parse("#000000")
		white, _ := Parse("#ffffff")
		red, _ := Parse("#ff0000")

		Convey("Should be zero for identical colors", func() {
			So(RGBDistance(red, red), ShouldEqual, 0)
		})

		Convey("Should be symmetric", func() {
			So(RGBDistance(black, red), ShouldEqual, RGBDistance(red, black))
		})

		Convey("Black to white spans the full diagonal", func() {
			So(RGBDistance(black, white), ShouldAlmostEqual, MaxRGBDistance, 1e-9)
		})

		Convey("Alpha never contributes", func() {
			translucent, _ := Parse("#ff000080")
			So(RGBDistance(red, translucent.WithoutAlpha()), ShouldEqual, 0)
		})
	})
}

func TestDeltaE(t *testing.T) {
	Convey("DeltaE", t, func() {
		black, _ := Parse("#000000")
		red, _ := Parse("#ff0000")
		orange, _ := Parse("#ff8000")

		Convey("Should be zero for identical colors", func() {
			So(DeltaE(red, red), ShouldAlmostEqual, 0, 1e-9)
		})

		Convey("Should be symmetric", func() {
			So(DeltaE(black, orange), ShouldAlmostEqual, DeltaE(orange, black), 1e-9)
		})

		Convey("Orange reads closer to red than to black", func() {
			So(DeltaE(orange, red), ShouldBeLessThan, DeltaE(orange, black))
		})

		Convey("Distant colors land well above the similarity threshold", func() {
			So(DeltaE(black, red), ShouldBeGreaterThan, 10)
		})
	})
}
