package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/matheuskafuri/grid7/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig   string
	flagCategory string
	flagNoSplash bool
	flagOffline  bool
	flagCheck    bool
)

var rootCmd = &cobra.Command{
	Use:   "grid7",
	Short: "Terminal tech news and launch tracker",
	Long: `grid7 is a tech news reader with an AI-curated live feed, a product launch
timeline and a newsletter you can send to yourself.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "never query live suppliers; use the built-in feed only")
	rootCmd.Flags().StringVarP(&flagCategory, "category", "c", "all", "start on a category (all, ai, os, gadgets, other)")
	rootCmd.Flags().BoolVar(&flagNoSplash, "no-splash", false, "skip the splash screen")

	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "check for a newer release")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(launchesCmd)
	rootCmd.AddCommand(subscribeCmd)
	rootCmd.AddCommand(serveCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("grid7 %s (commit: %s, built: %s)\n", version, commit, date)
		if !flagCheck {
			return nil
		}
		res, err := update.Check(cmd.Context(), &http.Client{Timeout: 10 * time.Second}, update.ReleasesURL, version)
		if err != nil {
			return err
		}
		if res == nil {
			fmt.Println("You are on the latest release.")
			return nil
		}
		fmt.Printf("Update available: v%s %s\n", res.LatestVersion, res.URL)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
