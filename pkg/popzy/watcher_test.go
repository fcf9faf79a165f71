package popzy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsChangedTemplate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "welcome.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	reg := NewRegistry()
	_, err := reg.LoadGlob(filepath.Join(dir, "*.md"))
	require.NoError(t, err)

	w, err := NewWatcher(reg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	w.Start(ctx)

	msgs := make(chan tea.Msg, 1)
	go func() { msgs <- w.Listen()() }()

	require.NoError(t, os.WriteFile(path, []byte("new"), 0o644))

	select {
	case msg := <-msgs:
		reloaded, ok := msg.(TemplatesReloadedMsg)
		require.True(t, ok)
		require.NoError(t, reloaded.Err)
		assert.Equal(t, []string{"welcome"}, reloaded.IDs)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload message")
	}

	go func() {
		for {
			if w.Listen()() == nil {
				return
			}
		}
	}()

	require.Eventually(t, func() bool {
		got, ok := reg.Get("welcome")
		return ok && got.Body == "new"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "welcome.md")
	require.NoError(t, os.WriteFile(path, []byte("body"), 0o644))

	reg := NewRegistry()
	_, err := reg.LoadGlob(filepath.Join(dir, "*.md"))
	require.NoError(t, err)

	w, err := NewWatcher(reg, zerolog.Nop())
	require.NoError(t, err)
	defer w.Close()

	_, relevant := w.handle(fsnotifyWrite(filepath.Join(dir, "notes.json")))
	assert.False(t, relevant)

	msg, relevant := w.handle(fsnotifyWrite(path))
	assert.True(t, relevant)
	assert.Equal(t, []string{"welcome"}, msg.IDs)
}

func TestWatcher_StopsOnClose(t *testing.T) {
	reg := NewRegistry()
	w, err := NewWatcher(reg, zerolog.Nop())
	require.NoError(t, err)

	w.Start(context.Background())
	require.NoError(t, w.Close())
	assert.Nil(t, w.Listen()())
}

func fsnotifyWrite(name string) fsnotify.Event {
	return fsnotify.Event{Name: name, Op: fsnotify.Write}
}
