// Package wazero runs a WebAssembly build of the specialized recipe
// extractor as a sandboxed fallback backend. The module is a WASI command:
// it reads one JSON request on stdin, writes one JSON result on stdout and
// exits. Each call instantiates a fresh module instance, so no state leaks
// between scrapes.
package wazero

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/ladle-app/ladle"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
)

// Ensure Backend implements the domain interfaces at compile time.
var (
	_ ladle.Backend     = (*Backend)(nil)
	_ ladle.HostChecker = (*Backend)(nil)
)

// request is the stdin envelope understood by the sandboxed extractor.
type request struct {
	Op   string `json:"op"`
	HTML string `json:"html,omitempty"`
	URL  string `json:"url,omitempty"`
	Wild bool   `json:"wild,omitempty"`
}

// hostsResult mirrors ladle.Result with a host-list payload.
type hostsResult struct {
	Success bool             `json:"success"`
	Data    []string         `json:"data"`
	Err     *ladle.ErrorInfo `json:"error"`
}

// Backend lazily loads and compiles the WebAssembly extractor. The first
// Extract or Preload call performs the one-time initialization; concurrent
// callers share the same in-flight initialization.
type Backend struct {
	loader func() ([]byte, error)

	once     sync.Once
	initErr  error
	runtime  wazero.Runtime
	compiled wazero.CompiledModule

	ready  atomic.Bool
	failed atomic.Bool
}

// NewBackend creates a sandboxed backend. The loader supplies the
// WebAssembly binary (from disk, an embedded asset or a download) and is
// invoked at most once.
func NewBackend(loader func() ([]byte, error)) *Backend {
	return &Backend{loader: loader}
}

// Name identifies the backend in logs.
func (b *Backend) Name() string { return "sandbox" }

// Ready reports whether the sandbox finished initializing successfully.
func (b *Backend) Ready() bool { return b.ready.Load() }

// Failed reports whether initialization was attempted and failed.
func (b *Backend) Failed() bool { return b.failed.Load() }

// Preload initializes the sandbox eagerly so the first scrape does not pay
// the compilation cost. Idempotent: later calls return the first outcome.
func (b *Backend) Preload(ctx context.Context) error {
	b.once.Do(func() {
		wasm, err := b.loader()
		if err != nil {
			b.initErr = ladle.Errorf(ladle.ETUNSUPPORTED, "load sandbox module: %s", err)
			b.failed.Store(true)
			return
		}

		r := wazero.NewRuntime(ctx)
		wasi_snapshot_preview1.MustInstantiate(ctx, r)

		compiled, err := r.CompileModule(ctx, wasm)
		if err != nil {
			_ = r.Close(ctx)
			b.initErr = ladle.Errorf(ladle.ETUNSUPPORTED, "compile sandbox module: %s", err)
			b.failed.Store(true)
			return
		}

		b.runtime = r
		b.compiled = compiled
		b.ready.Store(true)
	})
	return b.initErr
}

// Extract runs one extraction inside the sandbox.
func (b *Backend) Extract(ctx context.Context, html, url string, wild bool) (*ladle.ScrapedRecipe, error) {
	out, err := b.invoke(ctx, request{Op: "extract", HTML: html, URL: url, Wild: wild})
	if err != nil {
		return nil, err
	}

	var res ladle.Result
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, ladle.Errorf(ladle.ETINTERNAL, "malformed sandbox reply: %s", err)
	}
	if !res.Success {
		return nil, res.AsError()
	}
	return res.Data, nil
}

// SupportedHosts lists the hosts the sandboxed extractor has specialized
// support for.
func (b *Backend) SupportedHosts(ctx context.Context) ([]string, error) {
	out, err := b.invoke(ctx, request{Op: "hosts"})
	if err != nil {
		return nil, err
	}

	var res hostsResult
	if err := json.Unmarshal(out, &res); err != nil {
		return nil, ladle.Errorf(ladle.ETINTERNAL, "malformed sandbox reply: %s", err)
	}
	if !res.Success {
		return nil, (ladle.Result{Err: res.Err}).AsError()
	}
	return res.Data, nil
}

// IsHostSupported reports whether the sandboxed extractor supports a host.
func (b *Backend) IsHostSupported(ctx context.Context, host string) (bool, error) {
	hosts, err := b.SupportedHosts(ctx)
	if err != nil {
		return false, err
	}
	for _, h := range hosts {
		if h == host {
			return true, nil
		}
	}
	return false, nil
}

// Close releases the runtime and every compiled artifact.
func (b *Backend) Close(ctx context.Context) error {
	if b.runtime == nil {
		return nil
	}
	return b.runtime.Close(ctx)
}

// invoke initializes the sandbox if needed, then runs one request through
// a fresh module instance.
func (b *Backend) invoke(ctx context.Context, req request) ([]byte, error) {
	if err := b.Preload(ctx); err != nil {
		return nil, err
	}

	in, err := json.Marshal(req)
	if err != nil {
		return nil, ladle.Errorf(ladle.ETINTERNAL, "encode sandbox request: %s", err)
	}

	var out bytes.Buffer
	cfg := wazero.NewModuleConfig().
		WithName("").
		WithStdin(bytes.NewReader(in)).
		WithStdout(&out).
		WithStderr(io.Discard)

	mod, err := b.runtime.InstantiateModule(ctx, b.compiled, cfg)
	if err != nil {
		// A WASI command reports success by exiting with code zero, which
		// wazero surfaces as a sys.ExitError.
		var exitErr *sys.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != 0 {
			return nil, ladle.Errorf(ladle.ETINTERNAL, "sandbox run: %s", err)
		}
	}
	if mod != nil {
		_ = mod.Close(ctx)
	}

	return out.Bytes(), nil
}
