package valgo

import (
	"context"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

// Loader owns the lifecycle of an Engine: a one-time asynchronous load, a
// synchronous accessor, and a test-only reset. Concurrent Init calls share a
// single acquisition; the losing callers block on the winner's outcome.
type Loader struct {
	mu     sync.Mutex
	sf     singleflight.Group
	ready  atomic.Bool
	handle *Engine

	// acquire is swapped by white-box tests to observe acquisition counts.
	acquire func(ctx context.Context, opt Options) (*Engine, error)
}

// NewLoader returns an uninitialized loader.
func NewLoader() *Loader {
	return &Loader{acquire: acquireEngine}
}

// acquireEngine builds the engine and proves the generator matrix whole, so
// a broken dispatch table fails at load time rather than at first use.
func acquireEngine(ctx context.Context, opt Options) (*Engine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e := &Engine{opt: opt}
	for _, k := range Kinds() {
		for _, t := range []Target{TargetDraft202012, TargetDraft07, TargetOpenAPI30} {
			if _, err := e.JSONSchema(k, t); err != nil {
				return nil, err
			}
		}
	}
	return e, nil
}

// Init loads the engine. It is idempotent: once the loader is ready, Init
// returns immediately. Concurrent callers during the load share one
// acquisition. A caller whose ctx expires abandons the wait, but the
// in-flight acquisition keeps running and later callers observe its outcome.
// A failed acquisition leaves the loader uninitialized; the next Init
// retries.
func (l *Loader) Init(ctx context.Context, opt Options) error {
	if l.ready.Load() {
		return nil
	}
	ch := l.sf.DoChan("init", func() (any, error) {
		if l.ready.Load() {
			return nil, nil
		}
		h, err := l.acquire(ctx, opt)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.handle = h
		l.mu.Unlock()
		// The handle is published before the ready flag flips, so a reader
		// that observes ready also observes the handle.
		l.ready.Store(true)
		return nil, nil
	})
	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Handle returns the loaded engine, or ErrNotInitialized when Init has not
// completed. It never blocks and never triggers a load.
func (l *Loader) Handle() (*Engine, error) {
	if !l.ready.Load() {
		return nil, ErrNotInitialized
	}
	l.mu.Lock()
	h := l.handle
	l.mu.Unlock()
	if h == nil {
		// Reset raced between the ready check and the read.
		return nil, ErrNotInitialized
	}
	return h, nil
}

// Ready reports whether Init has completed successfully.
func (l *Loader) Ready() bool { return l.ready.Load() }

// Reset drops the loaded engine and returns the loader to the uninitialized
// state. Intended for test isolation only; resetting while validations are in
// flight is not synchronized against them.
func (l *Loader) Reset() {
	l.ready.Store(false)
	l.mu.Lock()
	l.handle = nil
	l.mu.Unlock()
	l.sf.Forget("init")
}

// defaultLoader backs the package-level lifecycle functions. Most programs
// need exactly one engine and use these instead of carrying a *Loader around.
var defaultLoader = NewLoader()

// Init loads the default engine. See Loader.Init.
func Init(ctx context.Context, opt Options) error { return defaultLoader.Init(ctx, opt) }

// Handle returns the default engine. See Loader.Handle.
func Handle() (*Engine, error) { return defaultLoader.Handle() }

// Ready reports whether the default engine is loaded.
func Ready() bool { return defaultLoader.Ready() }

// Reset returns the default loader to the uninitialized state. Test use only.
func Reset() { defaultLoader.Reset() }
