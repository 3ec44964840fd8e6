package theme

import (
	"testing"

	"github.com/huemap-cli/huemap/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid touching real files
	filesystem.SetMemMapFs()
}

const themeDoc = `{
	"name": "Rosé Pine Moon",
	"type": "dark",
	"colors": {
		"editor.background": "#232136",
		"editor.foreground": "#e0def4",
		"badge.background": "#ea9a97e6",
		"editor.fontFamily": "monospace"
	},
	"tokenColors": [
		{
			"scope": "comment",
			"settings": { "foreground": "#6e6a86", "fontStyle": "italic" }
		},
		{
			"scope": ["keyword", "storage.type"],
			"settings": { "foreground": "#3e8fb0" }
		},
		{
			"settings": { "foreground": "#e0def4", "background": "#2a273f" }
		}
	]
}`

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should extract the theme name", func() {
			th, err := Parse([]byte(themeDoc))
			So(err, ShouldBeNil)
			So(th.Name, ShouldEqual, "Rosé Pine Moon")
		})

		Convey("Should flatten the colors mapping in sorted key order", func() {
			th, err := Parse([]byte(themeDoc))
			So(err, ShouldBeNil)

			var colorTokens []string
			for _, token := range th.Tokens() {
				if len(token.Name) > 7 && token.Name[:7] == "colors." {
					colorTokens = append(colorTokens, token.Name)
				}
			}

			So(colorTokens, ShouldResemble, []string{
				"colors.badge.background",
				"colors.editor.background",
				"colors.editor.foreground",
			})
		})

		Convey("Should skip values that are not hex literals", func() {
			th, err := Parse([]byte(themeDoc))
			So(err, ShouldBeNil)

			for _, token := range th.Tokens() {
				So(token.Name, ShouldNotContainSubstring, "fontFamily")
			}
		})

		Convey("Should keep the raw literal alongside the parsed color", func() {
			th, err := Parse([]byte(themeDoc))
			So(err, ShouldBeNil)

			for _, token := range th.Tokens() {
				if token.Name == "colors.badge.background" {
					So(token.Raw, ShouldEqual, "#ea9a97e6")
					So(token.Color.Hex(), ShouldEqual, "#ea9a97")
					So(token.Color.AlphaHex().MustGet(), ShouldEqual, "e6")
				}
			}
		})

		Convey("Should reject documents that are not JSON objects", func() {
			_, err := Parse([]byte("[]"))
			So(err, ShouldNotBeNil)
		})

		Convey("Should name the token on a malformed color", func() {
			_, err := Parse([]byte(`{"colors": {"editor.background": "#xyz"}}`))
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "colors.editor.background")
		})
	})
}

func TestTokenColors(t *testing.T) {
	Convey("tokenColors extraction", t, func() {
		th, err := Parse([]byte(themeDoc))
		So(err, ShouldBeNil)

		names := make(map[string]string)
		for _, token := range th.Tokens() {
			names[token.Name] = token.Raw
		}

		Convey("String scopes label the token directly", func() {
			So(names["tokenColors[comment].foreground"], ShouldEqual, "#6e6a86")
		})

		Convey("List scopes are joined", func() {
			So(names["tokenColors[keyword, storage.type].foreground"], ShouldEqual, "#3e8fb0")
		})

		Convey("Scopeless entries fall back to their index", func() {
			So(names["tokenColors[token[2]].foreground"], ShouldEqual, "#e0def4")
			So(names["tokenColors[token[2]].background"], ShouldEqual, "#2a273f")
		})
	})
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		Convey("Should read a theme from the filesystem", func() {
			So(filesystem.API().WriteFile("/themes/moon.json", []byte(themeDoc), 0o644), ShouldBeNil)

			th, err := Load("/themes/moon.json")
			So(err, ShouldBeNil)
			So(len(th.Tokens()), ShouldBeGreaterThan, 0)
		})

		Convey("Should name the path on failure", func() {
			_, err := Load("/themes/missing.json")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "/themes/missing.json")
		})
	})
}
