package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func collectEvents(t *testing.T, evCh <-chan string, want int, timeout time.Duration) map[string]bool {
	t.Helper()
	got := map[string]bool{}
	deadline := time.After(timeout)
	for len(got) < want {
		select {
		case p, ok := <-evCh:
			if !ok {
				t.Fatalf("event channel closed early with %d of %d events", len(got), want)
			}
			got[filepath.Base(p)] = true
		case <-deadline:
			t.Fatalf("timed out with %d of %d events: %v", len(got), want, got)
		}
	}
	return got
}

func TestWatcherDebouncedBurst(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, errCh, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 50 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}
	go func() {
		for range errCh {
		}
	}()

	// A burst of creates inside one debounce window plus a straggler that
	// re-arms the timer. All three must come through.
	writeFiles(t, root, "one.txt", "two.pdf")
	time.Sleep(70 * time.Millisecond)
	writeFiles(t, root, "three.txt")

	got := collectEvents(t, evCh, 3, 5*time.Second)
	for _, name := range []string{"one.txt", "two.pdf", "three.txt"} {
		if !got[name] {
			t.Errorf("missing event for %s (got %v)", name, got)
		}
	}
}

func TestWatcherFiltersAndInitialScan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "existing.pdf")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}

	writeFiles(t, root, "ignored.docx", "new.txt")

	got := collectEvents(t, evCh, 2, 5*time.Second)
	if !got["existing.pdf"] || !got["new.txt"] {
		t.Errorf("expected existing.pdf and new.txt, got %v", got)
	}
	if got["ignored.docx"] {
		t.Error("unsupported extension leaked through the watcher")
	}
}

func TestWatcherNoRoots(t *testing.T) {
	if _, _, err := StartWatcher(context.Background(), WatchConfig{}, nil); err == nil {
		t.Error("expected error for empty roots")
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{root}}, nil)
	if err != nil {
		t.Fatalf("StartWatcher: %v", err)
	}
	cancel()

	select {
	case _, ok := <-evCh:
		if ok {
			t.Error("expected closed channel after cancel")
		}
	case <-time.After(2 * time.Second):
		t.Error("event channel not closed after cancel")
	}

	// Writes after shutdown must not panic anything.
	if err := os.WriteFile(filepath.Join(root, "late.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}
