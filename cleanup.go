package nativelib

import (
	"errors"
	"os"
	"sync"
)

// scratch tracks every temp path created by this package until Cleanup
// drains it. Paths are registered at creation, before control returns to
// the caller.
var scratch registry

type registry struct {
	mu    sync.Mutex
	paths []string
}

func (r *registry) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths = append(r.paths, path)
}

func (r *registry) drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	paths := r.paths
	r.paths = nil

	return paths
}

// Cleanup removes every scratch directory and file created by Extract,
// Load and TempDir so far. Call it once at application shutdown.
// Libraries loaded from the removed files stay loaded.
func Cleanup() error {
	var errs []error

	paths := scratch.drain()
	for i := len(paths) - 1; i >= 0; i-- {
		if err := os.RemoveAll(paths[i]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
