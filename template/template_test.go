package template

import (
	"testing"

	"github.com/huemap-cli/huemap/filesystem"
	"github.com/huemap-cli/huemap/palette"
	"github.com/huemap-cli/huemap/theme"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching real files
	filesystem.SetMemMapFs()
}

const testScheme = `
name: "Test Scheme"
slug: "test-scheme"
variant: "dark"
palette:
  base00: "#232136"
  base08: "#eb6f92"
  base0A: "#f6c177"
`

func testPalette() *palette.Palette {
	p, err := palette.Parse([]byte(testScheme))
	So(err, ShouldBeNil)
	return p
}

func testTheme(doc string) *theme.Theme {
	t, err := theme.Parse([]byte(doc))
	So(err, ShouldBeNil)
	return t
}

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		p := testPalette()

		Convey("Should replace palette colors with placeholders", func() {
			th := testTheme(`{"colors": {"editor.background": "#232136"}}`)

			out, fuzzy, err := Generate(th, p, 0)
			So(err, ShouldBeNil)
			So(fuzzy, ShouldBeEmpty)
			So(string(out), ShouldContainSubstring, `"{{ base00 }}"`)
			So(string(out), ShouldNotContainSubstring, "#232136")
		})

		Convey("Should keep alpha suffixes literal next to the placeholder", func() {
			th := testTheme(`{"colors": {"badge.background": "#eb6f92e6"}}`)

			out, _, err := Generate(th, p, 0)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"{{ base08 }}e6"`)
		})

		Convey("Should template name and type at the top level", func() {
			th := testTheme(`{"name": "My Theme", "type": "dark", "colors": {}}`)

			out, _, err := Generate(th, p, 0)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"{{{ theme_name }}}"`)
			So(string(out), ShouldContainSubstring, `"{{{ theme_type }}}"`)
		})

		Convey("Should leave foreign colors untouched without a threshold", func() {
			th := testTheme(`{"colors": {"editor.background": "#817c9c"}}`)

			out, fuzzy, err := Generate(th, p, 0)
			So(err, ShouldBeNil)
			So(fuzzy, ShouldBeEmpty)
			So(string(out), ShouldContainSubstring, "#817c9c")
		})

		Convey("Should leave fully transparent colors literal", func() {
			th := testTheme(`{"colors": {"widget.shadow": "#23213600"}}`)

			out, _, err := Generate(th, p, 0)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, "#23213600")
			So(string(out), ShouldNotContainSubstring, "{{ base00 }}")
		})

		Convey("Should pull near misses onto their closest entry under a threshold", func() {
			// One bit off base00, perceptually indistinguishable.
			th := testTheme(`{"colors": {"editor.background": "#232137"}}`)

			out, fuzzy, err := Generate(th, p, 5)
			So(err, ShouldBeNil)
			So(fuzzy, ShouldHaveLength, 1)
			So(fuzzy[0].Color, ShouldEqual, "#232137")
			So(fuzzy[0].Entry, ShouldEqual, "base00")
			So(fuzzy[0].DeltaE, ShouldBeLessThan, 5)
			So(string(out), ShouldContainSubstring, `"{{ base00 }}"`)
		})

		Convey("Should walk nested tokenColors structures", func() {
			th := testTheme(`{"tokenColors": [{"scope": "comment", "settings": {"foreground": "#eb6f92"}}]}`)

			out, _, err := Generate(th, p, 0)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"{{ base08 }}"`)
		})

		Convey("Should refuse an empty palette", func() {
			th := testTheme(`{"colors": {}}`)

			_, _, err := Generate(th, nil, 0)
			So(err, ShouldWrap, palette.ErrEmpty)
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Build", t, func() {
		p := testPalette()

		Convey("Should substitute placeholders with palette values", func() {
			out, err := Build([]byte(`{"background": "{{ base00 }}", "accent": "{{base08}}"}`), p)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"#232136"`)
			So(string(out), ShouldContainSubstring, `"#eb6f92"`)
		})

		Convey("Should substitute theme metadata", func() {
			out, err := Build([]byte(`{"name": "{{ theme_name }}", "type": "{{ theme_type }}"}`), p)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"Test Scheme"`)
			So(string(out), ShouldContainSubstring, `"dark"`)
		})

		Convey("Should not HTML-escape metadata with special characters", func() {
			p, err := palette.Parse([]byte("name: \"Summer's Day & Night\"\nvariant: \"light\"\npalette:\n  base00: \"#ffffff\"\n"))
			So(err, ShouldBeNil)

			out, err := Build([]byte(`{"name": "{{{ theme_name }}}", "type": "{{{ theme_type }}}"}`), p)
			So(err, ShouldBeNil)
			So(string(out), ShouldContainSubstring, `"Summer's Day & Night"`)
			So(string(out), ShouldNotContainSubstring, "&amp;")
			So(string(out), ShouldNotContainSubstring, "&#39;")
		})

		Convey("Should keep alpha suffixes appended to the value", func() {
			out, err := Build([]byte(`"{{ base0A }}e6"`), p)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `"#f6c177e6"`)
		})

		Convey("Should reject undefined placeholders with a suggestion", func() {
			_, err := Build([]byte(`"{{ bose08 }}"`), p)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "bose08")
			So(err.Error(), ShouldContainSubstring, "base08")
		})

		Convey("Should refuse an empty palette", func() {
			_, err := Build([]byte("{}"), nil)
			So(err, ShouldWrap, palette.ErrEmpty)
		})
	})
}

func TestBuildFile(t *testing.T) {
	Convey("BuildFile", t, func() {
		p := testPalette()

		Convey("Should render a template from the filesystem", func() {
			So(filesystem.API().WriteFile("/templates/t.mustache", []byte(`"{{ base00 }}"`), 0o644), ShouldBeNil)

			out, err := BuildFile("/templates/t.mustache", p)
			So(err, ShouldBeNil)
			So(string(out), ShouldEqual, `"#232136"`)
		})

		Convey("Should name the path on failure", func() {
			_, err := BuildFile("/templates/missing.mustache", p)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "/templates/missing.mustache")
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Generate then Build", t, func() {
		p := testPalette()

		Convey("Should reproduce every matched color", func() {
			th := testTheme(`{
				"name": "My Theme",
				"type": "dark",
				"colors": {
					"editor.background": "#232136",
					"badge.background": "#eb6f92e6",
					"editor.foreground": "#817c9c"
				}
			}`)

			generated, _, err := Generate(th, p, 0)
			So(err, ShouldBeNil)

			rebuilt, err := Build(generated, p)
			So(err, ShouldBeNil)

			So(string(rebuilt), ShouldContainSubstring, `"#232136"`)
			So(string(rebuilt), ShouldContainSubstring, `"#eb6f92e6"`)
			So(string(rebuilt), ShouldContainSubstring, `"#817c9c"`)
			So(string(rebuilt), ShouldContainSubstring, `"Test Scheme"`)
			So(string(rebuilt), ShouldNotContainSubstring, "{{")
		})
	})
}
