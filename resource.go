package nativelib

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var tempParent struct {
	sync.RWMutex
	dir string
}

// SetTempDir overrides the parent directory under which scratch
// directories are created. The default is the system temp directory.
func SetTempDir(dir string) {
	tempParent.Lock()
	defer tempParent.Unlock()

	tempParent.dir = dir
}

// TempDir creates a uniquely named scratch directory with the given
// prefix and registers it for removal by Cleanup.
func TempDir(prefix string) (string, error) {
	tempParent.RLock()
	parent := tempParent.dir
	tempParent.RUnlock()

	dir, err := os.MkdirTemp(parent, prefix)
	if err != nil {
		return "", &TempDirError{Err: err}
	}
	scratch.add(dir)

	logger.Load().Debug("scratch dir created", zap.String("dir", dir))

	return dir, nil
}

// Extract copies the named bundled resource to a fresh scratch directory
// and returns the path of the copy. The copy keeps the resource's base
// name and extension so the host loader sees a familiar suffix. The
// scratch directory and the file are both registered for removal by
// Cleanup before Extract returns.
func Extract(name string) (string, error) {
	src, err := openBundled(name)
	if err != nil {
		return "", err
	}
	defer src.Close()

	return extract(name, src)
}

// ExtractFS is Extract with resolution relative to an explicit anchor
// instead of the registered bundles.
func ExtractFS(fsys fs.FS, name string) (string, error) {
	src, err := openAnchored(fsys, name)
	if err != nil {
		return "", err
	}
	defer src.Close()

	return extract(name, src)
}

// cleanPath strips the leading slash of classpath-style absolute
// identifiers; fs paths are unrooted. Errors keep the name as given.
func cleanPath(name string) string {
	return strings.TrimPrefix(name, "/")
}

func openBundled(name string) (fs.File, error) {
	bundles.RLock()
	defer bundles.RUnlock()

	for _, fsys := range bundles.list {
		if f, err := fsys.Open(cleanPath(name)); err == nil {
			return f, nil
		}
	}

	return nil, &NotFoundError{Path: name}
}

func openAnchored(fsys fs.FS, name string) (fs.File, error) {
	f, err := fsys.Open(cleanPath(name))
	if err != nil {
		return nil, &NotFoundError{Path: name, Anchored: true}
	}

	return f, nil
}

func extract(name string, src fs.File) (string, error) {
	dir, err := TempDir("nativelib")
	if err != nil {
		return "", err
	}

	base := path.Base(name)
	ext := path.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	dst, err := os.CreateTemp(dir, stem+"-*"+ext)
	if err != nil {
		return "", &CopyError{Path: name, Dest: dir, Err: err}
	}
	scratch.add(dst.Name())

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", &CopyError{Path: name, Dest: dst.Name(), Err: err}
	}

	if err := dst.Close(); err != nil {
		return "", &CopyError{Path: name, Dest: dst.Name(), Err: err}
	}

	logger.Load().Debug("resource extracted", zap.String("resource", name), zap.String("file", dst.Name()))

	return dst.Name(), nil
}
