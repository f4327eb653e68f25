package nativelib

import (
	"fmt"
)

// NotFoundError is returned when a resource is absent from the searched
// namespace.
type NotFoundError struct {
	Path     string
	Anchored bool // resolution used an explicit anchor instead of the registered bundles
}

func (e *NotFoundError) Error() string {
	if e.Anchored {
		return fmt.Sprintf("nativelib: resource not found relative to anchor: %s", e.Path)
	}

	return fmt.Sprintf("nativelib: resource not found: %s", e.Path)
}

// CopyError is returned when streaming a resource to its destination file
// fails.
type CopyError struct {
	Path string
	Dest string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("nativelib: cannot copy resource %s to %s: %v", e.Path, e.Dest, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// TempDirError is returned when a scratch directory cannot be created.
type TempDirError struct {
	Err error
}

func (e *TempDirError) Error() string {
	return fmt.Sprintf("nativelib: cannot create temp dir: %v", e.Err)
}

func (e *TempDirError) Unwrap() error {
	return e.Err
}
