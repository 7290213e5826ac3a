package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"btp/internal/config"
	"btp/internal/domain"
	"btp/internal/execution"
	"btp/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, formatter *ui.Formatter) *ListCommand {
	return &ListCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := lc.config.Validate(); err != nil {
		return err
	}

	coord := execution.NewCoordinator(lc.config, baseObserver{}, slog.Default())
	catalog := coord.Load(cmd.Context())
	if catalog == nil {
		color.Yellow("No tests found")
		return nil
	}

	if pattern := lc.config.Flags.Filter; pattern != "" {
		ids := domain.NewFilter().FilterByName(catalog.CaseIDs(), pattern)
		if len(ids) == 0 {
			color.Yellow("No tests match %q", pattern)
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	return lc.formatter.PrintCatalog(catalog, lc.config.Flags.JSON)
}
