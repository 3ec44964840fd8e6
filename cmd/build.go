package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/huemap-cli/huemap/assets"
	"github.com/huemap-cli/huemap/icon"
	"github.com/huemap-cli/huemap/style"
	"github.com/huemap-cli/huemap/template"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("template", "t", "", "Path to the mustache template (default: bundled VS Code template)")
	buildCmd.Flags().StringP("palette", "p", "", "Path to the base16 palette YAML file (default: bundled rose-pine-moon)")
	buildCmd.Flags().StringP("output", "o", "out", "Directory the rendered theme is written to")
	buildCmd.Flags().StringP("output-name", "n", "", "Override the output file name (default: derived from the palette)")
	buildCmd.Flags().BoolP("force", "f", false, "Overwrite the output file without asking")
}

// buildCmd renders a template against a palette to produce a concrete theme.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render a mustache template against a base16 palette into a theme file",
	Long: `Render a mustache template into a ready-to-use theme file.

Placeholders like "{{ base0A }}" are substituted with the palette's hex
values; "{{{ theme_name }}}" and "{{{ theme_type }}}" carry the palette's
metadata. Undefined placeholders abort the build with a suggestion for
the closest known name.`,
	Run: func(cmd *cobra.Command, args []string) {
		p, paletteName, err := loadPalette(lo.Must(cmd.Flags().GetString("palette")))
		handleErr(err)

		var (
			rendered     []byte
			templateName string
		)

		if input := lo.Must(cmd.Flags().GetString("template")); input != "" {
			templateName = filepath.Base(input)
			rendered, err = template.BuildFile(input, p)
		} else {
			templateName = assets.TemplateName
			rendered, err = template.Build(assets.Template, p)
		}
		handleErr(err)

		name := lo.Must(cmd.Flags().GetString("output-name"))
		if name == "" {
			name = p.OutputName()
		}

		output := filepath.Join(lo.Must(cmd.Flags().GetString("output")), name)

		handleErr(confirmOverwrite(output, lo.Must(cmd.Flags().GetBool("force"))))
		handleErr(writeFile(output, rendered))

		fmt.Printf("%s Theme built\n", icon.Get(icon.Success))
		fmt.Printf("  %s %s\n", style.Faint("Template:"), templateName)
		fmt.Printf("  %s %s\n", style.Faint("Palette: "), paletteName)
		fmt.Printf("  %s %s\n", style.Faint("Output:  "), style.Bold(output))
	},
}
