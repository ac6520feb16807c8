package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
)

var (
	pendingMu sync.Mutex
	pending   = map[string]struct{}{}
)

// MarkForExit records path for removal by Cleanup.
func MarkForExit(path string) {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	pending[path] = struct{}{}
}

func unmark(path string) {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	delete(pending, path)
}

// Pending returns the recorded paths in sorted order.
func Pending() []string {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Cleanup removes every recorded path, best effort, and clears the registry.
// It returns the paths it failed to remove.
func Cleanup() []string {
	pendingMu.Lock()
	defer pendingMu.Unlock()

	var failed []string
	for p := range pending {
		if err := remove(p); err != nil {
			failed = append(failed, p)
		}
		delete(pending, p)
	}
	sort.Strings(failed)
	return failed
}

// HandleSignals runs Cleanup and exits with status 130 when the process
// receives SIGINT or SIGTERM. It stops listening when ctx is done.
func HandleSignals(ctx context.Context) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			Cleanup()
			os.Exit(130)
		case <-ctx.Done():
		}
	}()
}
