package palette

import (
	"testing"

	"github.com/huemap-cli/huemap/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching real files
	filesystem.SetMemMapFs()
}

const scheme = `
name: "Rosé Pine Moon"
slug: "rose-pine-moon"
variant: "dark"
palette:
  base00: "#232136"
  base01: "#2a273f"
  base02: "#393552"
  base08: "#eb6f92"
`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should decode a valid scheme", func() {
			p, err := Parse([]byte(scheme))
			So(err, ShouldBeNil)
			So(p.Name, ShouldEqual, "Rosé Pine Moon")
			So(p.Slug, ShouldEqual, "rose-pine-moon")
			So(p.Variant, ShouldEqual, "dark")
			So(p.Len(), ShouldEqual, 4)
		})

		Convey("Should keep entries in file order", func() {
			p, err := Parse([]byte(scheme))
			So(err, ShouldBeNil)
			So(p.Names(), ShouldResemble, []string{"base00", "base01", "base02", "base08"})
		})

		Convey("Should reject duplicate entry names", func() {
			_, err := Parse([]byte("palette:\n  base00: \"#000000\"\n  base00: \"#ffffff\"\n"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "duplicate")
		})

		Convey("Should reject a missing palette mapping", func() {
			_, err := Parse([]byte("name: empty\n"))
			So(err, ShouldWrap, ErrEmpty)
		})

		Convey("Should reject an empty palette mapping", func() {
			_, err := Parse([]byte("palette: {}\n"))
			So(err, ShouldWrap, ErrEmpty)
		})

		Convey("Should name the offending entry on a bad color", func() {
			_, err := Parse([]byte("palette:\n  base00: \"not-a-color\"\n"))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "base00")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should read a scheme from the filesystem", func() {
			So(filesystem.API().WriteFile("/schemes/moon.yml", []byte(scheme), 0o644), ShouldBeNil)

			p, err := Load("/schemes/moon.yml")
			So(err, ShouldBeNil)
			So(p.Len(), ShouldEqual, 4)
		})

		Convey("Should name the path on failure", func() {
			_, err := Load("/schemes/missing.yml")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "/schemes/missing.yml")
		})
	})
}

func TestLookups(t *testing.T) {
	Convey("Lookups", t, func() {
		p, err := Parse([]byte(scheme))
		So(err, ShouldBeNil)

		Convey("Get resolves a role name", func() {
			c, ok := p.Get("base08")
			So(ok, ShouldBeTrue)
			So(c.Hex(), ShouldEqual, "#eb6f92")

			_, ok = p.Get("base0F")
			So(ok, ShouldBeFalse)
		})

		Convey("ByColor maps normalized hex to role name", func() {
			lookup := p.ByColor()
			So(lookup["232136"], ShouldEqual, "base00")
			So(lookup["eb6f92"], ShouldEqual, "base08")
		})

		Convey("ByColor keeps the first entry when colors repeat", func() {
			dup, err := Parse([]byte("palette:\n  base00: \"#101010\"\n  base01: \"#101010\"\n"))
			So(err, ShouldBeNil)
			So(dup.ByColor()["101010"], ShouldEqual, "base00")
		})
	})
}

func TestContext(t *testing.T) {
	Convey("Context", t, func() {
		Convey("Should expose metadata and hex values", func() {
			p, err := Parse([]byte(scheme))
			So(err, ShouldBeNil)

			ctx := p.Context()
			So(ctx["theme_name"], ShouldEqual, "Rosé Pine Moon")
			So(ctx["theme_type"], ShouldEqual, "dark")
			So(ctx["base00"], ShouldEqual, "#232136")
			So(ctx["base08"], ShouldEqual, "#eb6f92")
		})

		Convey("Should fall back on missing metadata", func() {
			p, err := Parse([]byte("palette:\n  base00: \"#000000\"\n"))
			So(err, ShouldBeNil)

			ctx := p.Context()
			So(ctx["theme_name"], ShouldEqual, "Unknown Theme")
			So(ctx["theme_type"], ShouldEqual, "dark")
		})
	})
}

func TestOutputName(t *testing.T) {
	Convey("OutputName", t, func() {
		Convey("Slug wins when present", func() {
			p, err := Parse([]byte(scheme))
			So(err, ShouldBeNil)
			So(p.OutputName(), ShouldEqual, "rose-pine-moon.json")
		})

		Convey("Name is slugified otherwise", func() {
			p, err := Parse([]byte("name: \"Rosé Pine Moon\"\npalette:\n  base00: \"#000000\"\n"))
			So(err, ShouldBeNil)
			So(p.OutputName(), ShouldEqual, "rosé-pine-moon.json")
		})

		Convey("Unsafe filename characters are stripped from the name", func() {
			p, err := Parse([]byte("name: \"Summer's Day!\"\npalette:\n  base00: \"#000000\"\n"))
			So(err, ShouldBeNil)
			So(p.OutputName(), ShouldEqual, "summer-s-day.json")
		})

		Convey("Anonymous schemes get a generic name", func() {
			p, err := Parse([]byte("palette:\n  base00: \"#000000\"\n"))
			So(err, ShouldBeNil)
			So(p.OutputName(), ShouldEqual, "theme.json")
		})
	})
}
