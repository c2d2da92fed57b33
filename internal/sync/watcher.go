package sync

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lucventura/clinicday/internal/logger"
)

// ChangeEvent signals that the calendar database was modified outside the
// current process (e.g. a booking made from another terminal).
type ChangeEvent struct {
	Path string
	At   time.Time
}

// Watcher watches the SQLite database file for writes so the TUI can
// refresh its day view. SQLite in WAL mode touches sibling -wal/-shm files
// on write, so the whole data directory is watched and events are filtered
// by base name prefix.
type Watcher struct {
	watcher       *fsnotify.Watcher
	dbPath        string
	changes       chan ChangeEvent
	done          chan struct{}
	debounceTimer *time.Timer
	pending       bool
}

// NewWatcher creates a new database watcher for the given database path
func NewWatcher(dbPath string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher: fsWatcher,
		dbPath:  dbPath,
		changes: make(chan ChangeEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the database directory
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.dbPath)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	go w.watch()
	return nil
}

// Stop stops the watcher
func (w *Watcher) Stop() {
	close(w.done)
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.watcher.Close()
	close(w.changes)
}

// Changes returns the channel for database change notifications
func (w *Watcher) Changes() <-chan ChangeEvent {
	return w.changes
}

// watch is the main event loop
func (w *Watcher) watch() {
	const debounceDelay = 100 * time.Millisecond

	dbBase := filepath.Base(w.dbPath)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// Match the database file and its WAL siblings.
			name := filepath.Base(event.Name)
			if name != dbBase && name != dbBase+"-wal" && name != dbBase+"-shm" {
				continue
			}

			w.pending = true
			if w.debounceTimer != nil {
				w.debounceTimer.Stop()
			}
			w.debounceTimer = time.AfterFunc(debounceDelay, func() {
				w.flush()
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue watching
			logger.Warn("database watcher error", "error", err)
		}
	}
}

// flush emits a single change event after the debounce window
func (w *Watcher) flush() {
	select {
	case <-w.done:
		return
	default:
	}

	if !w.pending {
		return
	}
	w.pending = false

	select {
	case w.changes <- ChangeEvent{Path: w.dbPath, At: time.Now()}:
	default:
		// A refresh is already queued; dropping the duplicate is fine.
	}
}
