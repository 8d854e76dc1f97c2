package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_Relevant(t *testing.T) {
	w := New(t.TempDir(), []string{".go", ".java"})

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{name: "go file write", ev: fsnotify.Event{Name: "/p/domain/user.go", Op: fsnotify.Write}, want: true},
		{name: "java file create", ev: fsnotify.Event{Name: "/p/domain/User.java", Op: fsnotify.Create}, want: true},
		{name: "remove", ev: fsnotify.Event{Name: "/p/domain/user.go", Op: fsnotify.Remove}, want: true},
		{name: "rename", ev: fsnotify.Event{Name: "/p/domain/user.go", Op: fsnotify.Rename}, want: true},
		{name: "chmod only", ev: fsnotify.Event{Name: "/p/domain/user.go", Op: fsnotify.Chmod}, want: false},
		{name: "irrelevant extension", ev: fsnotify.Event{Name: "/p/notes.txt", Op: fsnotify.Write}, want: false},
		{name: "hidden file", ev: fsnotify.Event{Name: "/p/.user.go.swp", Op: fsnotify.Write}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.relevant(tt.ev))
		})
	}
}

func TestWatcher_Relevant_Directory(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "domain")
	require.NoError(t, os.Mkdir(sub, 0o755))
	w := New(root, []string{".go"})

	// Directory events are relevant regardless of extension.
	assert.True(t, w.relevant(fsnotify.Event{Name: sub, Op: fsnotify.Create}))
}

func TestWatcher_Run_TriggersOnChange(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "domain"), 0o755))

	w := New(root, []string{".go"})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		//nolint:errcheck // cancellation path returns nil
		w.Run(ctx, func(context.Context) {
			if calls.Add(1) == 1 {
				cancel()
			}
		})
	}()

	// Give the watcher a moment to establish watches, then touch a file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "domain", "user.go"),
		[]byte("package domain\n"), 0o644))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not trigger")
	}
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

func TestWatcher_Run_ReturnsNilOnCancel(t *testing.T) {
	w := New(t.TempDir(), []string{".go"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.Run(ctx, func(context.Context) {})

	assert.NoError(t, err)
}

func TestWatcher_Run_MissingRoot(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "does-not-exist"), []string{".go"})

	err := w.Run(context.Background(), func(context.Context) {})

	assert.Error(t, err)
}
