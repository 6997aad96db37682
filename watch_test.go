package playink

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestWatchDirsReportsChanges(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "primer")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan string, 16)
	done := make(chan error, 1)
	ready := make(chan struct{})
	go func() {
		close(ready)
		done <- watchDirs(ctx, zerolog.Nop(), []string{dir, filepath.Join(dir, "missing")}, func(name string) {
			select {
			case changed <- name:
			default:
			}
		})
	}()
	<-ready

	target := filepath.Join(sub, "erc20.md")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	// The watcher registers asynchronously, so keep touching the file
	// until an event comes through.
	for got := false; !got; {
		select {
		case name := <-changed:
			got = name == target
		case <-tick.C:
			if err := os.WriteFile(target, []byte("# ERC-20\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change reported")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watchDirs: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watchDirs did not stop on cancel")
	}
}
