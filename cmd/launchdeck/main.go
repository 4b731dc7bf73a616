package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thesavant42/launchdeck/internal/ui"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	dbPath   string
	file     string
	url      string
	logLevel string
	noSplash bool
}

var rootCmd = &cobra.Command{
	Use:   "launchdeck",
	Short: "Mission control for upcoming SpaceX launches",
	Long: "launchdeck tracks the upcoming launch manifest, lets you pin missions,\n" +
		"pick a mission of focus and shape readiness targets.\n" +
		"Run without a subcommand to open the interactive dashboard.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.dbPath, "db", "", "SQLite database path (overrides LAUNCHDECK_DB)")
	pf.StringVar(&rootFlags.file, "file", "", "Read launches from a JSON file instead of the API")
	pf.StringVar(&rootFlags.url, "url", "", "Upcoming launches endpoint (overrides LAUNCHDECK_LAUNCHES_URL)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&rootFlags.noSplash, "no-splash", false, "Skip the splash screen")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(launchesCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.Version = version
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
