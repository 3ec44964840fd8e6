// Package cmd implements the command-line interface for huemap.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/huemap-cli/huemap/constant"
	"github.com/huemap-cli/huemap/icon"
	"github.com/huemap-cli/huemap/key"
	"github.com/huemap-cli/huemap/log"
	"github.com/huemap-cli/huemap/style"
	"github.com/huemap-cli/huemap/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the huemap application.
var rootCmd = &cobra.Command{
	Use:   constant.Huemap,
	Short: "Analyze and generate editor color themes against base16 palettes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.HiRed).Render("    - Map editor theme colors onto base16 palettes, and back"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// confirmOverwrite asks before clobbering an existing output file.
// Forced runs and non-interactive sessions skip the prompt.
func confirmOverwrite(path string, force bool) error {
	if force {
		return nil
	}

	exists, err := fileExists(path)
	if err != nil || !exists {
		return err
	}

	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s already exists, overwrite?", path),
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return err
	}

	if !overwrite {
		return fmt.Errorf("refusing to overwrite %s", path)
	}

	return nil
}
