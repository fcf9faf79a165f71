package popzy

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// TemplatesReloadedMsg reports templates reloaded from disk. Dialogs pick up the
// new body the next time they are built.
type TemplatesReloadedMsg struct {
	IDs     []string
	Removed []string
	Err     error
}

// Watcher reloads file backed templates when they change on disk.
type Watcher struct {
	registry *Registry
	logger   zerolog.Logger
	fsw      *fsnotify.Watcher
	events   chan TemplatesReloadedMsg
	done     chan struct{}
	once     sync.Once
}

// NewWatcher watches the directories of every file backed template in registry.
func NewWatcher(registry *Registry, logger zerolog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	for _, dir := range registry.Dirs() {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return &Watcher{
		registry: registry,
		logger:   logger.With().Str("component", "watcher").Logger(),
		fsw:      fsw,
		events:   make(chan TemplatesReloadedMsg, 8),
		done:     make(chan struct{}),
	}, nil
}

// Start processes file events until ctx is cancelled or Close is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Listen returns a command that waits for the next reload. Re-issue it after
// each TemplatesReloadedMsg to keep listening.
func (w *Watcher) Listen() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-w.events
		if !ok {
			return nil
		}
		return msg
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("watch error")
			if !w.send(ctx, TemplatesReloadedMsg{Err: err}) {
				return
			}
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			msg, relevant := w.handle(ev)
			if !relevant {
				continue
			}
			if !w.send(ctx, msg) {
				return
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) (TemplatesReloadedMsg, bool) {
	id := TemplateID(ev.Name)
	existing, known := w.registry.Get(id)
	if known && filepath.Clean(existing.Path) != filepath.Clean(ev.Name) {
		return TemplatesReloadedMsg{}, false
	}

	switch {
	case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
		if !known && !IsTemplateFile(ev.Name) {
			return TemplatesReloadedMsg{}, false
		}
		t, err := w.registry.LoadFile(ev.Name)
		if err != nil {
			w.logger.Error().Err(err).Str("path", ev.Name).Msg("template reload failed")
			return TemplatesReloadedMsg{Err: err}, true
		}
		w.logger.Debug().Str("template", t.ID).Msg("template reloaded")
		return TemplatesReloadedMsg{IDs: []string{t.ID}}, true
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if !known {
			return TemplatesReloadedMsg{}, false
		}
		w.registry.Remove(id)
		w.logger.Debug().Str("template", id).Msg("template removed")
		return TemplatesReloadedMsg{Removed: []string{id}}, true
	}
	return TemplatesReloadedMsg{}, false
}

func (w *Watcher) send(ctx context.Context, msg TemplatesReloadedMsg) bool {
	select {
	case w.events <- msg:
		return true
	case <-ctx.Done():
		return false
	case <-w.done:
		return false
	}
}
