package store

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// VaultOp describes what happened to a document in the vault.
type VaultOp int

const (
	// VaultOpChanged covers creation and modification.
	VaultOpChanged VaultOp = iota
	// VaultOpRemoved covers deletion and renames away.
	VaultOpRemoved
)

// VaultEvent is one document-level change observed in the vault.
type VaultEvent struct {
	ID string
	Op VaultOp
}

// Watcher turns filesystem notifications on a vault directory into
// document-level events. The CLI host uses it to keep the sqlite index
// fresh and to feed document-open notifications while the interactive
// switcher is running. It watches the real filesystem; the afero
// abstraction of VaultStore does not apply here.
type Watcher struct {
	root   string
	fsw    *fsnotify.Watcher
	events chan VaultEvent
}

// NewWatcher creates a watcher over the vault root and all of its
// subdirectories.
func NewWatcher(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:   filepath.Clean(root),
		fsw:    fsw,
		events: make(chan VaultEvent, 64),
	}
	if err := w.addRecursive(w.root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// Events returns the channel document events are delivered on. The
// channel closes when Run returns.
func (w *Watcher) Events() <-chan VaultEvent {
	return w.events
}

// Run pumps filesystem notifications into document events until the
// context is canceled or the underlying watcher closes.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ctx, ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("vault watcher error", "error", err)
		}
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	// New directories need their own watch before anything inside them
	// is visible.
	if ev.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			_ = w.addRecursive(ev.Name)
			return
		}
	}

	if !strings.EqualFold(filepath.Ext(ev.Name), markdownExt) {
		return
	}
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return
	}
	event := VaultEvent{ID: filepath.ToSlash(rel), Op: VaultOpChanged}
	if ev.Op.Has(fsnotify.Remove) || ev.Op.Has(fsnotify.Rename) {
		event.Op = VaultOpRemoved
	}

	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// The path may have vanished between the event and the walk.
			return nil
		}
		if d.IsDir() {
			return w.fsw.Add(p)
		}
		return nil
	})
}
