package execution

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the test executable on disk and triggers rediscovery
// when it is rebuilt or removed. It watches the parent directory rather
// than the file itself so the watch survives the delete/recreate cycle
// of a relink.
type Watcher struct {
	w       *fsnotify.Watcher
	exePath string
	reload  func()
	log     *slog.Logger
}

// NewWatcher starts watching the directory containing exePath. reload is
// invoked from the watch goroutine on create/change (only while the file
// has executable permission, a half-written binary is skipped) and
// unconditionally on remove.
func NewWatcher(exePath string, reload func(), logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(exePath)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		w:       fsw,
		exePath: filepath.Clean(exePath),
		reload:  reload,
		log:     logger,
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.w.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.exePath {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				w.reload()
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				if isExecutable(w.exePath) {
					w.reload()
				}
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("executable watch error", "err", err)
		}
	}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
