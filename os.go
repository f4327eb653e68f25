package nativelib

import (
	"runtime"
)

type family int

const (
	familyOther family = iota
	familyLinux
	familyMac
	familyWindows
)

var hostFamily = detectFamily(runtime.GOOS)

func detectFamily(goos string) family {
	switch goos {
	case "linux":
		return familyLinux
	case "darwin":
		return familyMac
	case "windows":
		return familyWindows
	}

	return familyOther
}

// RunningOnMac reports whether the host operating system is macOS.
func RunningOnMac() bool {
	return hostFamily == familyMac
}

// RunningOnLinux reports whether the host operating system is Linux.
func RunningOnLinux() bool {
	return hostFamily == familyLinux
}

// LibraryName returns the host file name for a library stem, e.g. "foo"
// becomes libfoo.so on Linux, libfoo.dylib on macOS and foo.dll on
// Windows. Use it to pick the right bundled artifact for the host.
func LibraryName(name string) string {
	return libPrefix + name + libSuffix
}
