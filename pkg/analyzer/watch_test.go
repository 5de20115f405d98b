package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type watchEvent struct {
	proj    *Project
	changed []string
}

func TestWatch_ReanalyzesOnChange(t *testing.T) {
	root := writeProject(t, map[string]string{"a.ts": cardSource})

	cache, err := NewCache(16)
	require.NoError(t, err)
	a := newTestAnalyzer(WithCache(cache))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan watchEvent, 8)
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, root, WatchOptions{Workers: 2, Debounce: 20 * time.Millisecond}, func(p *Project, changed []string) {
			events <- watchEvent{proj: p, changed: changed}
		})
	}()

	next := func() watchEvent {
		t.Helper()
		select {
		case ev := <-events:
			return ev
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for analysis")
			return watchEvent{}
		}
	}

	initial := next()
	assert.Nil(t, initial.changed)
	assert.Len(t, initial.proj.Components(), 1)

	added := filepath.Join(root, "b.ts")
	require.NoError(t, os.WriteFile(added, []byte(legacySource), 0644))

	ev := next()
	assert.Contains(t, ev.changed, added)
	assert.Len(t, ev.proj.Components(), 2)

	// Create and write may arrive as separate bursts; let them settle.
	for quiet := false; !quiet; {
		select {
		case <-events:
		case <-time.After(300 * time.Millisecond):
			quiet = true
		}
	}

	// Non-source files do not trigger a run.
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("# notes"), 0644))
	select {
	case ev := <-events:
		t.Fatalf("unexpected analysis for %v", ev.changed)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingRoot(t *testing.T) {
	err := newTestAnalyzer().Watch(context.Background(), filepath.Join(t.TempDir(), "missing"), WatchOptions{}, func(*Project, []string) {})
	assert.Error(t, err)
}
