package execution

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"btp/internal/config"
	"btp/internal/domain"
	"btp/internal/parser"
)

// Observer receives discovery and run lifecycle notifications. It is the
// contract between the coordinator and whatever frontend hosts it.
type Observer interface {
	DiscoveryStarted()
	// DiscoveryFinished delivers the new catalog, or nil when discovery
	// failed or the executable is missing.
	DiscoveryFinished(catalog *domain.Catalog)
	RunStarted(ids []string)
	// Progress delivers one event per status line, in emission order.
	Progress(ev domain.ProgressEvent)
	// RunFinished fires after every run, failed runs included.
	RunFinished()
}

// Coordinator serializes discovery and run operations against one test
// executable so they never overlap: at most one session is active at a
// time and its output can never be misattributed. Discovery and run
// failures never propagate past the coordinator; they resolve to an
// absent catalog or a finished run plus a log entry, and the coordinator
// stays usable.
type Coordinator struct {
	cfg *config.Config
	obs Observer
	log *slog.Logger

	// gate serializes sessions; a run requested during discovery (or
	// vice versa) waits here.
	gate sync.Mutex

	mu        sync.Mutex
	catalog   *domain.Catalog
	watcher   *Watcher
	watching  bool
	cancelRun context.CancelFunc
}

// NewCoordinator creates a new Coordinator.
func NewCoordinator(cfg *config.Config, obs Observer, logger *slog.Logger) *Coordinator {
	return &Coordinator{cfg: cfg, obs: obs, log: logger}
}

// Catalog returns the current catalog snapshot, nil when absent.
func (c *Coordinator) Catalog() *domain.Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.catalog
}

// Load runs one discovery cycle and replaces the catalog wholesale with
// the result, or with nil when discovery fails. A missing executable is
// "no tests yet": the catalog goes absent without a log entry. Every
// other failure is logged. The new catalog (nil when absent) is
// returned and delivered to the observer.
func (c *Coordinator) Load(ctx context.Context) *domain.Catalog {
	c.gate.Lock()
	defer c.gate.Unlock()

	c.obs.DiscoveryStarted()

	cat, err := c.discover(ctx)
	if err != nil {
		if !IsExecutableMissing(err) {
			c.log.Error("test discovery failed", "exe", c.cfg.ResolvedExePath(), "err", err)
		}
		cat = nil
	}

	c.mu.Lock()
	c.catalog = cat
	c.mu.Unlock()

	c.obs.DiscoveryFinished(cat)
	c.ensureWatch()
	return cat
}

func (c *Coordinator) discover(ctx context.Context) (*domain.Catalog, error) {
	exe := c.cfg.ResolvedExePath()
	sess, err := StartSession(ctx, exe, DiscoveryArgs(c.cfg.ListFormat)...)
	if err != nil {
		return nil, err
	}

	// Test names arrive on stderr; stdout still has to be drained.
	go func() {
		for range sess.Stdout() {
		}
	}()

	var sb strings.Builder
	for line := range sess.Stderr() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	if err := sess.Wait(); err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}

	if c.cfg.ListFormat == config.ListDOT {
		return parser.ParseGraph(sb.String(), exe, c.cfg.SourcePrefix)
	}
	return parser.ParseListing(sb.String(), exe, exe)
}

// Run executes the requested identifiers, forwarding each progress event
// to the observer as soon as it is parsed. Requesting exactly the
// catalog root identifier (or nothing) runs the whole catalog without a
// filter. Execution failures are logged but run-finished is still
// emitted so the frontend never hangs on a failed run.
func (c *Coordinator) Run(ctx context.Context, ids []string) {
	c.gate.Lock()
	defer c.gate.Unlock()

	c.mu.Lock()
	cat := c.catalog
	c.mu.Unlock()

	runAll := len(ids) == 0 ||
		(cat != nil && len(ids) == 1 && ids[0] == cat.RootID())

	c.obs.RunStarted(ids)
	defer c.obs.RunFinished()

	filter := ""
	if !runAll {
		filter = BuildFilter(ids)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	c.setCancel(cancel)
	defer c.setCancel(nil)

	exe := c.cfg.ResolvedExePath()
	sess, err := StartSession(ctx, exe, RunArgs(filter)...)
	if err != nil {
		c.log.Error("test run failed", "exe", exe, "err", err)
		return
	}

	// Status markers arrive on stdout; stderr still has to be drained.
	go func() {
		for range sess.Stderr() {
		}
	}()

	var state parser.RunState
	var running string
	for line := range sess.Stdout() {
		for _, ev := range state.ProcessLine(line) {
			switch ev.Kind {
			case domain.CaseRunning:
				running = ev.ID
			case domain.CasePassed, domain.CaseFailed:
				running = ""
			}
			c.obs.Progress(ev)
		}
	}

	err = sess.Wait()
	if ctx.Err() != nil {
		if running != "" {
			c.obs.Progress(domain.ProgressEvent{Kind: domain.CaseCancelled, ID: running})
		}
		c.log.Info("test run cancelled", "exe", exe)
		return
	}
	if err != nil {
		// A failed run is a reported outcome, not a protocol error.
		c.log.Error("test run failed", "exe", exe, "err", err)
	}
}

// Cancel terminates the in-flight run session, if any. The interrupted
// run still emits run-finished, and the case that was executing surfaces
// as cancelled.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	cancel := c.cancelRun
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Coordinator) setCancel(cancel context.CancelFunc) {
	c.mu.Lock()
	c.cancelRun = cancel
	c.mu.Unlock()
}

// WatchExecutable keeps a filesystem watch on the executable so the
// catalog follows rebuilds. Watch callbacks re-enter Load and therefore
// queue behind any in-flight operation on the gate.
func (c *Coordinator) WatchExecutable() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = true
	return c.startWatchLocked()
}

// ensureWatch re-establishes the watch after a discovery cycle, e.g.
// when the executable's directory appeared after a failed first watch.
func (c *Coordinator) ensureWatch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.watching {
		return
	}
	if err := c.startWatchLocked(); err != nil {
		c.log.Warn("cannot watch executable", "exe", c.cfg.ResolvedExePath(), "err", err)
	}
}

func (c *Coordinator) startWatchLocked() error {
	if c.watcher != nil {
		return nil
	}
	w, err := NewWatcher(c.cfg.ResolvedExePath(), func() {
		c.Load(context.Background())
	}, c.log)
	if err != nil {
		return err
	}
	c.watcher = w
	return nil
}

// Close releases the filesystem watch.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	c.watching = false
	return err
}
