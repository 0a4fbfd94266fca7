// Package backend owns the shared handle to the external Firebase services
// and the single-flight guard that constructs it lazily, exactly once per
// process, safe under concurrent first use.
package backend

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sikhaidindia/backend/internal/config"
)

// State is the observable lifecycle of the guard. It exists for UI
// feedback; correctness never depends on observing intermediate states —
// EnsureReady alone returns either a live handle or an error.
type State int

const (
	StateIdle State = iota
	StateInitializing
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BuildFunc constructs the backend handle. The default is BuildFirebase;
// tests inject their own.
type BuildFunc func(ctx context.Context, cfg config.Config) (*Handle, error)

// attempt is one construction in flight. Every caller that raced into the
// same attempt reads the same outcome after done closes.
type attempt struct {
	done   chan struct{}
	handle *Handle
	err    error
}

// Guard de-duplicates concurrent initialization of the backend handle.
// Invariants: at most one construction is in flight at any time; after a
// failure the handle is nil (never partially populated) and the next
// EnsureReady call starts a brand-new attempt.
type Guard struct {
	cfg     config.Config
	build   BuildFunc
	onState func(State)

	mu      sync.Mutex
	state   State
	handle  *Handle
	current *attempt
}

// Option configures a Guard.
type Option func(*Guard)

// WithBuilder replaces the handle constructor.
func WithBuilder(build BuildFunc) Option {
	return func(g *Guard) { g.build = build }
}

// WithStateHook registers a callback invoked on every state transition.
// The hook runs with the guard's lock held and must not call back into the
// guard.
func WithStateHook(hook func(State)) Option {
	return func(g *Guard) { g.onState = hook }
}

// NewGuard returns an idle guard for the given configuration.
func NewGuard(cfg config.Config, opts ...Option) *Guard {
	g := &Guard{cfg: cfg, build: BuildFirebase, state: StateIdle}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// State reports the current lifecycle state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// EnsureReady returns the shared backend handle, constructing it on first
// use. Concurrent callers during construction all resolve to the same
// handle or the same error. Invalid configuration fails synchronously with
// a ConfigurationError without ever entering the initializing state. A
// failed attempt is not cached: the next call retries from scratch.
//
// A caller whose ctx is cancelled while waiting abandons the wait; the
// shared construction itself continues on the initiating caller's context.
func (g *Guard) EnsureReady(ctx context.Context) (*Handle, error) {
	g.mu.Lock()
	switch g.state {
	case StateReady:
		h := g.handle
		g.mu.Unlock()
		return h, nil
	case StateInitializing:
		at := g.current
		g.mu.Unlock()
		return at.wait(ctx)
	}

	// Idle or Failed: this caller owns a fresh attempt.
	if err := g.cfg.Validate(); err != nil {
		g.transition(StateFailed)
		g.mu.Unlock()
		slog.Error("Backend configuration invalid", "error", err)
		return nil, err
	}
	at := &attempt{done: make(chan struct{})}
	g.current = at
	g.transition(StateInitializing)
	g.mu.Unlock()

	slog.Info("Initializing backend handle", "projectId", g.cfg.ProjectID)
	h, err := g.build(ctx, g.cfg)

	g.mu.Lock()
	g.current = nil
	if err != nil {
		at.err = &BackendError{Op: "initialize", Err: err}
		g.handle = nil
		g.transition(StateFailed)
	} else {
		at.handle = h
		g.handle = h
		g.transition(StateReady)
	}
	g.mu.Unlock()
	close(at.done)

	if at.err != nil {
		slog.Error("Backend initialization failed", "error", at.err)
		return nil, at.err
	}
	slog.Info("Backend handle ready")
	return at.handle, nil
}

func (a *attempt) wait(ctx context.Context) (*Handle, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-a.done:
		return a.handle, a.err
	}
}

// transition must be called with g.mu held.
func (g *Guard) transition(s State) {
	g.state = s
	if g.onState != nil {
		g.onState(s)
	}
}
