package nativelib

import (
	"io/fs"

	"go.uber.org/zap"
)

// Result reports the outcome of a load attempt.
type Result struct {
	Loaded bool    // the library is linked into the process
	Path   string  // extracted file the loader was pointed at
	Handle uintptr // host loader handle, valid when Loaded
	Reason error   // link error reported by the loader when not Loaded
}

// Load extracts the named bundled resource and loads it as a native
// library. A link-level rejection by the host loader (wrong architecture,
// missing dependency, corrupt artifact) is reported in the Result, not as
// an error; errors are reserved for extraction failures, which indicate a
// broken bundle. Loading the same library twice is governed by the host
// loader, each call still extracts a fresh copy.
func Load(name string) (Result, error) {
	file, err := Extract(name)
	if err != nil {
		return Result{}, err
	}

	return attemptLoad(name, file), nil
}

// LoadFS is Load with resolution relative to an explicit anchor instead
// of the registered bundles.
func LoadFS(fsys fs.FS, name string) (Result, error) {
	file, err := ExtractFS(fsys, name)
	if err != nil {
		return Result{}, err
	}

	return attemptLoad(name, file), nil
}

// LoadLibrary extracts and loads the named bundled resource, returning
// whether the library is now linked into the process. It returns false
// with a nil error only when the host loader rejected the library;
// extraction failures are returned as errors.
func LoadLibrary(name string) (bool, error) {
	res, err := Load(name)
	if err != nil {
		return false, err
	}

	return res.Loaded, nil
}

func attemptLoad(name, file string) Result {
	logger.Load().Debug("loading library", zap.String("resource", name), zap.String("file", file))

	handle, err := loadLibrary(file)
	if err != nil {
		logger.Load().Debug("load failed", zap.String("file", file), zap.Error(err))

		return Result{Path: file, Reason: err}
	}

	logger.Load().Debug("library loaded", zap.String("file", file))

	return Result{Loaded: true, Path: file, Handle: handle}
}
