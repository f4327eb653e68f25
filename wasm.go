package nativelib

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

// WasmModule is an instantiated WASM build of a library, the portable
// fallback for hosts where the native build cannot be linked.
type WasmModule struct {
	api.Module

	rt wazero.Runtime
}

// Close releases the module and its runtime.
func (m *WasmModule) Close(ctx context.Context) error {
	return m.rt.Close(ctx)
}

// InstantiateWasm resolves the named bundled resource as a WASM module
// and instantiates it in a fresh runtime with WASI preview 1 available.
// Resources ending in .gz are decompressed first.
func InstantiateWasm(ctx context.Context, name string) (*WasmModule, error) {
	src, err := openBundled(name)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return instantiate(ctx, name, src)
}

// InstantiateWasmFS is InstantiateWasm with resolution relative to an
// explicit anchor instead of the registered bundles.
func InstantiateWasmFS(ctx context.Context, fsys fs.FS, name string) (*WasmModule, error) {
	src, err := openAnchored(fsys, name)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return instantiate(ctx, name, src)
}

func instantiate(ctx context.Context, name string, src io.Reader) (*WasmModule, error) {
	if strings.HasSuffix(name, ".gz") {
		r, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("nativelib: gunzip %s: %w", name, err)
		}
		src = r
	}

	var data bytes.Buffer

	_, err := data.ReadFrom(src)
	if err != nil {
		return nil, fmt.Errorf("nativelib: read %s: %w", name, err)
	}

	rt := wazero.NewRuntime(ctx)

	compiled, err := rt.CompileModule(ctx, data.Bytes())
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("nativelib: compile %s: %w", name, err)
	}

	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("nativelib: instantiate %s: %w", name, err)
	}

	logger.Load().Debug("wasm module instantiated", zap.String("resource", name))

	return &WasmModule{Module: mod, rt: rt}, nil
}
