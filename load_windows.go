//go:build windows

package nativelib

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	libPrefix = ""
	libSuffix = ".dll"
)

func loadLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("cannot load library %s: %w", path, err)
	}

	return uintptr(handle), nil
}
