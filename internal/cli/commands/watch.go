package commands

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"btp/internal/config"
	"btp/internal/domain"
	"btp/internal/execution"
	"btp/internal/ui"
)

// WatchCommand handles the watch command
type WatchCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewWatchCommand creates a new WatchCommand
func NewWatchCommand(cfg *config.Config, formatter *ui.Formatter) *WatchCommand {
	return &WatchCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (wc *WatchCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := wc.config.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()

	obs := &watchObserver{formatter: wc.formatter}
	coord := execution.NewCoordinator(wc.config, obs, slog.Default())
	if err := coord.WatchExecutable(); err != nil {
		// retried after every discovery cycle
		slog.Default().Warn("cannot watch executable yet", "err", err)
	}
	defer coord.Close()

	coord.Load(ctx)

	color.White("Watching %s (Ctrl+C to stop)", wc.config.ResolvedExePath())
	<-ctx.Done()
	return nil
}

// watchObserver prints every new catalog the watcher produces
type watchObserver struct {
	baseObserver
	formatter *ui.Formatter
}

func (o *watchObserver) DiscoveryStarted() {
	color.White("Discovering tests...")
}

func (o *watchObserver) DiscoveryFinished(catalog *domain.Catalog) {
	_ = o.formatter.PrintCatalog(catalog, false)
}
