// Package nativelib extracts native shared libraries bundled with an
// application and loads them into the running process.
package nativelib

import (
	"io/fs"
	"sync"
)

var bundles struct {
	sync.RWMutex
	list []fs.FS
}

// Register adds a bundle to the process-wide resource namespace, typically
// an embed.FS holding prebuilt libraries. Resources are resolved against
// bundles in registration order.
func Register(fsys fs.FS) {
	bundles.Lock()
	defer bundles.Unlock()

	bundles.list = append(bundles.list, fsys)
}
