package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"btp/internal/cli"
	"btp/internal/config"
	"btp/internal/storage"
	"btp/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	List     *ListCommand
	Run      *RunCommand
	Watch    *WatchCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	formatter := ui.NewFormatter(cfg)
	jsonStorage := storage.NewJSONStorage(cfg)
	history := storage.NewHistory(cfg)
	errorViewer := ui.NewErrorViewer(cfg, jsonStorage)

	return &Commands{
		List:     NewListCommand(cfg, formatter),
		Run:      NewRunCommand(cfg, formatter, jsonStorage, history, errorViewer),
		Watch:    NewWatchCommand(cfg, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVarP(&flags.Exe, "exe", "e", "", "Path to the Boost.Test executable")
	rootCmd.PersistentFlags().StringVar(&flags.SourcePrefix, "source-prefix", "", "Directory for resolving relative source paths from discovery")
	rootCmd.PersistentFlags().StringVar(&flags.Format, "format", "", "Discovery listing format: plain or dot")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Rebuild config once flags are parsed; flags take precedence over
	// the environment and .env
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		*cfg = *config.Load(flags.ToConfigFlags())

		level := slog.LevelInfo
		if flags.Verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Discover and list the executable's tests",
		Long:  "Invoke the test executable's content listing and print the discovered suite/case tree without running anything",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g. 'parse_*' or '*timeout*')")
	listCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(listCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [identifier ...]",
		Short: "Run all tests or the given suite/case identifiers",
		Long: `Execute the test executable and stream per-case progress.

Identifiers are either a bare suite name ("MySuite") or a compound
case identifier ("MySuite/case_one") as printed by "list --json".
With no identifiers the whole catalog runs.`,
		RunE: c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Run only cases whose name matches the pattern")
	runCmd.Flags().BoolVar(&flags.View, "view", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the executable and rediscover tests on rebuild",
		Long:  "Keep a filesystem watch on the test executable, re-running discovery whenever it is rebuilt or removed, until interrupted",
		RunE:  c.Watch.Execute,
	}
	rootCmd.AddCommand(watchCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View last run's failures interactively",
		Long:  "Display test failures from the last run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}
