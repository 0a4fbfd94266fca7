package backend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikhaidindia/backend/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		APIKey:        "key",
		ProjectID:     "sikhaid-test",
		StorageBucket: "sikhaid-test.appspot.com",
	}
}

func TestEnsureReadyBuildsOnce(t *testing.T) {
	var builds atomic.Int32
	handle := &Handle{}
	g := NewGuard(testConfig(), WithBuilder(func(context.Context, config.Config) (*Handle, error) {
		builds.Add(1)
		return handle, nil
	}))

	h1, err := g.EnsureReady(context.Background())
	require.NoError(t, err)
	h2, err := g.EnsureReady(context.Background())
	require.NoError(t, err)

	assert.Same(t, handle, h1)
	assert.Same(t, h1, h2)
	assert.Equal(t, int32(1), builds.Load())
	assert.Equal(t, StateReady, g.State())
}

func TestEnsureReadyConcurrentCallersShareOneAttempt(t *testing.T) {
	var builds atomic.Int32
	release := make(chan struct{})
	handle := &Handle{}
	g := NewGuard(testConfig(), WithBuilder(func(context.Context, config.Config) (*Handle, error) {
		builds.Add(1)
		<-release
		return handle, nil
	}))

	const callers = 16
	var wg sync.WaitGroup
	results := make([]*Handle, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = g.EnsureReady(context.Background())
		}(i)
	}

	// Let every goroutine reach the guard before the build completes.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), builds.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, handle, results[i])
	}
}

func TestEnsureReadyRetriesAfterFailure(t *testing.T) {
	var builds atomic.Int32
	handle := &Handle{}
	g := NewGuard(testConfig(), WithBuilder(func(context.Context, config.Config) (*Handle, error) {
		if builds.Add(1) == 1 {
			return nil, errors.New("transient network failure")
		}
		return handle, nil
	}))

	_, err := g.EnsureReady(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, g.State())

	var berr *BackendError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, "initialize", berr.Op)

	h, err := g.EnsureReady(context.Background())
	require.NoError(t, err)
	assert.Same(t, handle, h)
	assert.Equal(t, int32(2), builds.Load())
	assert.Equal(t, StateReady, g.State())
}

func TestEnsureReadyJoinersShareFailure(t *testing.T) {
	release := make(chan struct{})
	buildErr := errors.New("boom")
	g := NewGuard(testConfig(), WithBuilder(func(context.Context, config.Config) (*Handle, error) {
		<-release
		return nil, buildErr
	}))

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = g.EnsureReady(context.Background())
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.ErrorIs(t, errs[i], buildErr)
	}
	assert.Equal(t, StateFailed, g.State())
}

func TestEnsureReadyInvalidConfigFailsWithoutBuilding(t *testing.T) {
	g := NewGuard(config.Config{}, WithBuilder(func(context.Context, config.Config) (*Handle, error) {
		t.Fatal("builder must not run with invalid configuration")
		return nil, nil
	}))

	_, err := g.EnsureReady(context.Background())
	var cerr *config.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, StateFailed, g.State())
}

func TestEnsureReadyWaiterHonorsContextCancel(t *testing.T) {
	release := make(chan struct{})
	g := NewGuard(testConfig(), WithBuilder(func(context.Context, config.Config) (*Handle, error) {
		<-release
		return &Handle{}, nil
	}))

	go func() { _, _ = g.EnsureReady(context.Background()) }()
	require.Eventually(t, func() bool { return g.State() == StateInitializing },
		time.Second, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.EnsureReady(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The original attempt still completes for everyone else.
	close(release)
	h, err := g.EnsureReady(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestStateHookObservesTransitions(t *testing.T) {
	var mu sync.Mutex
	var seen []State
	g := NewGuard(testConfig(),
		WithBuilder(func(context.Context, config.Config) (*Handle, error) {
			return &Handle{}, nil
		}),
		WithStateHook(func(s State) {
			mu.Lock()
			seen = append(seen, s)
			mu.Unlock()
		}),
	)

	_, err := g.EnsureReady(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []State{StateInitializing, StateReady}, seen)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "initializing", StateInitializing.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestBackendErrorWrapping(t *testing.T) {
	inner := errors.New("rpc unavailable")
	err := &BackendError{Op: "initialize", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, fmt.Sprintf("backend %s: %v", "initialize", inner), err.Error())
}
