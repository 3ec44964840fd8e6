// Package cmd implements the command-line interface for huemap.
package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/huemap-cli/huemap/filesystem"
	"github.com/huemap-cli/huemap/key"
	"github.com/huemap-cli/huemap/match"
	"github.com/huemap-cli/huemap/report"
	"github.com/invopop/jsonschema"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("theme", "t", "", "Path to the VS Code theme JSON file (default: bundled rose-pine-moon)")
	analyzeCmd.Flags().StringP("palette", "p", "", "Path to the base16 palette YAML file (default: bundled rose-pine-moon)")
	analyzeCmd.Flags().StringP("metric", "m", "", "Distance metric for closest-match selection: delta-e or rgb")
	analyzeCmd.Flags().StringP("filter", "f", "", "Fuzzy-filter report entries by token name")
	analyzeCmd.Flags().BoolP("json", "j", false, "Format the analysis as a JSON document")
	analyzeCmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")

	lo.Must0(viper.BindPFlag(key.MatchMetric, analyzeCmd.Flags().Lookup("metric")))

	lo.Must0(analyzeCmd.RegisterFlagCompletionFunc("metric", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(match.MetricDeltaE), string(match.MetricRGB)}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// analyzeCmd classifies every theme color against the palette and renders the mapping report.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Map theme colors onto base16 palette entries and report the classification",
	Long: `Analyze a VS Code theme against a base16 palette.

Every theme color is classified as an exact palette match, an alpha-channel
variant of a palette color, or unmatched. Unmatched colors are annotated with
their closest palette entry under the configured distance metric and a
similarity tier derived from the CIE Delta E 2000 value.`,
	Run: func(cmd *cobra.Command, args []string) {
		t, themeName, err := loadTheme(lo.Must(cmd.Flags().GetString("theme")))
		handleErr(err)

		p, paletteName, err := loadPalette(lo.Must(cmd.Flags().GetString("palette")))
		handleErr(err)

		metric, err := match.ParseMetric(viper.GetString(key.MatchMetric))
		handleErr(err)

		results, err := match.Run(t, p, metric)
		handleErr(err)

		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			results = lo.Filter(results, func(r match.Result, _ int) bool {
				return fuzzy.MatchFold(filter, r.Token)
			})
		}

		output := &report.Output{
			Theme:   themeName,
			Palette: paletteName,
			Metric:  metric,
			Results: results,
			Summary: match.Summarize(results, p),
		}

		var writer io.Writer = os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			f, err := filesystem.API().Create(path)
			handleErr(err)
			defer f.Close()
			writer = f
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(output.JSON(writer))
			return
		}

		report.Render(writer, output, p)
	},
}

func init() {
	analyzeCmd.AddCommand(analyzeSchemaCmd)
}

// analyzeSchemaCmd generates the JSON schema for the structured analysis output.
var analyzeSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for the structured analysis output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		schema := reflector.Reflect(&report.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
