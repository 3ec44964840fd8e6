package cmd

import (
	"fmt"

	"github.com/huemap-cli/huemap/fetch"
	"github.com/huemap-cli/huemap/icon"
	"github.com/huemap-cli/huemap/key"
	"github.com/huemap-cli/huemap/style"
	"github.com/huemap-cli/huemap/util"
	"github.com/huemap-cli/huemap/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringP("repo", "r", "", "GitHub tree URL to download base16 scheme files from")
	fetchCmd.Flags().StringP("output-dir", "o", "", "Directory schemes are stored under (default: the schemes cache)")
	fetchCmd.Flags().IntP("limit", "l", 0, "Download at most this many scheme files (0 means all)")
	fetchCmd.Flags().String("token", "", "GitHub API token, persisted to the system keyring for later runs")

	lo.Must0(viper.BindPFlag(key.FetchRepo, fetchCmd.Flags().Lookup("repo")))
}

// fetchCmd downloads base16 scheme files from a GitHub repository.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download base16 palette files from a GitHub schemes repository",
	Long: `Download base16 palette YAML files from a GitHub repository.

Files land in a directory keyed by the upstream commit, so re-running
against an unchanged repository is a no-op. An optional API token raises
GitHub's rate limits and is stored in the system keyring.`,
	Run: func(cmd *cobra.Command, args []string) {
		if token := lo.Must(cmd.Flags().GetString("token")); token != "" {
			handleErr(fetch.SaveToken(token))
		}

		outputDir := lo.Must(cmd.Flags().GetString("output-dir"))
		if outputDir == "" {
			outputDir = where.Schemes()
		}

		eraser := func() {}
		progress := func(msg string) {
			eraser()
			eraser = util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), msg))
		}

		dir, err := fetch.Run(fetch.Options{
			RepoURL:   viper.GetString(key.FetchRepo),
			OutputDir: outputDir,
			Limit:     lo.Must(cmd.Flags().GetInt("limit")),
			BatchSize: viper.GetInt(key.FetchBatchSize),
			Progress:  progress,
		})
		eraser()
		handleErr(err)

		fmt.Printf(
			"%s Schemes available at %s\n",
			icon.Get(icon.Download),
			style.Bold(dir),
		)
	},
}
