package nativelib

import (
	"errors"
	"runtime"
	"testing"
	"testing/fstest"
)

func TestLoadRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"libjunk.so": {Data: []byte("this is not a shared library")},
	}

	res, err := LoadFS(fsys, "/libjunk.so")
	if err != nil {
		t.Fatal(err)
	}

	if res.Loaded {
		t.Fatal("garbage loaded as a library")
	}

	if res.Reason == nil {
		t.Error("rejection carries no reason")
	}

	if res.Path == "" {
		t.Error("result does not name the extracted file")
	}
}

func TestLoadLibraryRejected(t *testing.T) {
	fsys := fstest.MapFS{
		"libjunk.so": {Data: []byte("still not a shared library")},
	}

	file, err := ExtractFS(fsys, "libjunk.so")
	if err != nil {
		t.Fatal(err)
	}

	res := attemptLoad("libjunk.so", file)
	if res.Loaded {
		t.Fatal("garbage loaded as a library")
	}
}

func TestLoadLibraryNotFound(t *testing.T) {
	ok, err := LoadLibrary("/no-such-lib.so")
	if ok {
		t.Fatal("loaded a resource that does not exist")
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestRunningOn(t *testing.T) {
	if RunningOnMac() && RunningOnLinux() {
		t.Fatal("host cannot be both mac and linux")
	}

	switch runtime.GOOS {
	case "linux":
		if !RunningOnLinux() {
			t.Error("RunningOnLinux false on linux")
		}
	case "darwin":
		if !RunningOnMac() {
			t.Error("RunningOnMac false on darwin")
		}
	default:
		if RunningOnMac() || RunningOnLinux() {
			t.Errorf("mac/linux probe true on %s", runtime.GOOS)
		}
	}
}

func TestDetectFamily(t *testing.T) {
	cases := map[string]family{
		"linux":   familyLinux,
		"darwin":  familyMac,
		"windows": familyWindows,
		"freebsd": familyOther,
		"js":      familyOther,
	}

	for goos, want := range cases {
		if got := detectFamily(goos); got != want {
			t.Errorf("%s: got %d, want %d", goos, got, want)
		}
	}
}

func TestLibraryName(t *testing.T) {
	var want string

	switch runtime.GOOS {
	case "windows":
		want = "foo.dll"
	case "darwin":
		want = "libfoo.dylib"
	default:
		want = "libfoo.so"
	}

	if got := LibraryName("foo"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
