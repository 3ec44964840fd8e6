package config

import (
	"testing"

	"github.com/huemap-cli/huemap/filesystem"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("report.keys_per_color")
			So(result, ShouldEqual, "report_keys_per_color")
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Fields", t, func() {
		Convey("Every field knows its own key", func() {
			for name, field := range Default {
				So(field.Key, ShouldEqual, name)
			}
		})

		Convey("Every field carries a description", func() {
			for _, field := range Default {
				So(field.Description, ShouldNotBeEmpty)
			}
		})

		Convey("Pretty output names the key and its default", func() {
			for _, field := range Default {
				So(field.Pretty(), ShouldContainSubstring, field.Key)
			}
		})
	})
}
