//go:build !unix && !darwin && !windows

package nativelib

import (
	"fmt"
	"runtime"
)

const (
	libPrefix = "lib"
	libSuffix = ".so"
)

func loadLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("nativelib: unsupported os: %s", runtime.GOOS)
}
