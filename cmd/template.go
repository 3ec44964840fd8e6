package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/huemap-cli/huemap/icon"
	"github.com/huemap-cli/huemap/key"
	"github.com/huemap-cli/huemap/style"
	"github.com/huemap-cli/huemap/template"
	"github.com/huemap-cli/huemap/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringP("theme", "t", "", "Path to the VS Code theme JSON file (default: bundled rose-pine-moon)")
	templateCmd.Flags().StringP("palette", "p", "", "Path to the base16 palette YAML file (default: bundled rose-pine-moon)")
	templateCmd.Flags().Float64P("threshold", "T", 0, "Replace near-miss colors within this Delta E of a palette entry")
	templateCmd.Flags().StringP("output", "o", "", "Template output path (default: <theme>.mustache)")
	templateCmd.Flags().BoolP("force", "f", false, "Overwrite the output file without asking")

	lo.Must0(viper.BindPFlag(key.TemplateThreshold, templateCmd.Flags().Lookup("threshold")))
}

// templateCmd turns a concrete theme back into a palette-agnostic template.
var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Generate a mustache template from a theme and the palette it was built from",
	Long: `Generate a mustache template from an existing theme.

Color literals found in the palette are replaced by "{{ baseXX }}"
placeholders; alpha suffixes stay inline so a rebuild reproduces the
original file exactly. Colors outside the palette are left untouched
unless a positive --threshold pulls them onto their closest entry.`,
	Run: func(cmd *cobra.Command, args []string) {
		themePath := lo.Must(cmd.Flags().GetString("theme"))

		t, themeName, err := loadTheme(themePath)
		handleErr(err)

		p, _, err := loadPalette(lo.Must(cmd.Flags().GetString("palette")))
		handleErr(err)

		rendered, replacements, err := template.Generate(t, p, viper.GetFloat64(key.TemplateThreshold))
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			stem := "theme"
			if themePath != "" {
				stem = util.FileStem(themePath)
			}
			output = stem + ".json.mustache"
		}

		handleErr(confirmOverwrite(output, lo.Must(cmd.Flags().GetBool("force"))))
		handleErr(writeFile(output, rendered))

		for _, r := range replacements {
			fmt.Printf(
				"%s %s %s %s (Delta E %.2f)\n",
				icon.Get(icon.Warning),
				style.Swatch(r.Color),
				style.Faint("replaced by"),
				style.Bold(r.Entry),
				r.DeltaE,
			)
		}

		fmt.Printf(
			"%s Template for %s written to %s\n",
			icon.Get(icon.Success),
			style.Bold(themeName),
			style.Bold(filepath.Clean(output)),
		)
		fmt.Println(style.Faint(fmt.Sprintf("Render it with: huemap build -t %s -p <palette>", output)))
	},
}
