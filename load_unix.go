//go:build unix && !darwin

package nativelib

import (
	"fmt"

	"github.com/ebitengine/purego"
)

const (
	libPrefix = "lib"
	libSuffix = ".so"
)

func loadLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("cannot load library: %w", err)
	}

	return uintptr(handle), nil
}
