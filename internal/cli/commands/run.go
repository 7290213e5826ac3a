package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"btp/internal/config"
	"btp/internal/domain"
	"btp/internal/execution"
	"btp/internal/storage"
	"btp/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	formatter *ui.Formatter
	storage   storage.Storage
	history   *storage.History
	viewer    *ui.ErrorViewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	formatter *ui.Formatter,
	st storage.Storage,
	history *storage.History,
	viewer *ui.ErrorViewer,
) *RunCommand {
	return &RunCommand{
		config:    cfg,
		formatter: formatter,
		storage:   st,
		history:   history,
		viewer:    viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if err := rc.config.Validate(); err != nil {
		return err
	}
	ctx := cmd.Context()

	obs := &runObserver{}
	coord := execution.NewCoordinator(rc.config, obs, slog.Default())

	catalog := coord.Load(ctx)
	obs.catalog = catalog

	ids := args
	if pattern := rc.config.Flags.Filter; pattern != "" {
		if catalog == nil {
			return fmt.Errorf("cannot filter by name: discovery produced no catalog")
		}
		ids = domain.NewFilter().FilterByName(catalog.CaseIDs(), pattern)
		if len(ids) == 0 {
			color.Yellow("No tests match %q", pattern)
			return nil
		}
	}
	if len(ids) == 0 && catalog != nil {
		// running everything is signalled by the root identifier alone
		ids = []string{catalog.RootID()}
	}
	obs.total = selectedCount(catalog, ids)

	start := time.Now()
	coord.Run(ctx, ids)
	duration := time.Since(start)

	output := &domain.RunResultsOutput{
		Meta: domain.NewRunMeta(rc.config.ResolvedExePath(),
			obs.passed, obs.failed, obs.cancelled, duration),
		Details: obs.failures,
	}
	if err := rc.storage.Save(output); err != nil {
		return err
	}
	if rc.config.DatabaseConfigured() {
		if err := rc.history.Record(output); err != nil {
			slog.Default().Warn("cannot record run history", "err", err)
		}
	}

	rc.formatter.PrintRunSummary(output)

	if obs.failed > 0 {
		if rc.config.Flags.View {
			if err := rc.viewer.View(output); err != nil {
				return err
			}
		}
		return fmt.Errorf("%d test case(s) failed", obs.failed)
	}
	return nil
}

// selectedCount counts the cases a request covers, for sizing the
// progress bar.
func selectedCount(catalog *domain.Catalog, ids []string) int {
	if catalog == nil {
		return 0
	}
	if len(ids) == 1 && ids[0] == catalog.RootID() {
		return catalog.CountCases()
	}

	count := 0
	counted := make(map[string]bool)
	for _, id := range ids {
		node := catalog.Find(id)
		if node == nil || counted[id] {
			continue
		}
		counted[id] = true
		switch n := node.(type) {
		case *domain.Suite:
			count += domain.NewCatalog(n).CountCases()
		case *domain.Case:
			count++
		}
	}
	return count
}

// runObserver feeds the progress bar and collects failures while the
// coordinator streams events
type runObserver struct {
	catalog  *domain.Catalog
	progress *ui.ProgressBar
	total    int

	passed    int
	failed    int
	cancelled int
	failures  []domain.CaseFailure
}

func (o *runObserver) DiscoveryStarted()                         {}
func (o *runObserver) DiscoveryFinished(catalog *domain.Catalog) {}

func (o *runObserver) RunStarted(ids []string) {
	o.progress = ui.NewProgressBar(o.total)
}

func (o *runObserver) Progress(ev domain.ProgressEvent) {
	switch ev.Kind {
	case domain.CasePassed:
		o.passed++
	case domain.CaseFailed:
		o.failed++
		suite, name := domain.SplitID(ev.ID)
		failure := domain.CaseFailure{
			ID:      ev.ID,
			Suite:   suite,
			Name:    name,
			Message: ev.Message,
		}
		if node := o.catalog.Find(ev.ID); node != nil {
			failure.File, failure.Line = node.NodeSource()
		}
		o.failures = append(o.failures, failure)
	case domain.CaseCancelled:
		o.cancelled++
	default:
		return
	}
	if o.progress != nil {
		o.progress.Update(o.passed, o.failed)
	}
}

func (o *runObserver) RunFinished() {
	if o.progress != nil {
		o.progress.Finish()
	}
}
