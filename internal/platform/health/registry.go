// Package health provides the readiness registry. Gating checkers decide
// whether the front-end accepts traffic; observed checkers, like the remote
// todo service, are reported alongside without affecting the verdict.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-frontend/internal/ports"
)

// DefaultCheckTimeout bounds each individual check.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

type entry struct {
	checker ports.HealthChecker
	gating  bool
}

// Registry is a thread-safe implementation of [ports.HealthRegistry]. Checks
// run concurrently, each under its own timeout.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values are
// ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a gating checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.add(entry{checker: checker, gating: true})
}

// Observe adds a checker that is reported but does not gate readiness.
func (r *Registry) Observe(checker ports.HealthChecker) {
	r.add(entry{checker: checker})
}

func (r *Registry) add(e entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// CheckAll runs every check and builds the report. When two checkers share
// a name, the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) ports.HealthReport {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	errs := make([]error, len(entries))
	var wg sync.WaitGroup
	for i, e := range entries {
		wg.Go(func() {
			errs[i] = r.run(ctx, e.checker)
		})
	}
	wg.Wait()

	report := ports.HealthReport{Ready: true, Checks: make(map[string]error, len(entries))}
	gatingFailed := make(map[string]bool, len(entries))
	for i, e := range entries {
		name := e.checker.Name()
		report.Checks[name] = errs[i]
		gatingFailed[name] = e.gating && errs[i] != nil
	}
	for _, failed := range gatingFailed {
		if failed {
			report.Ready = false
		}
	}
	return report
}

// run bounds checker by the registry timeout even when it ignores ctx. A
// check that outlives the timeout keeps running in the background and its
// result is dropped.
func (r *Registry) run(ctx context.Context, checker ports.HealthChecker) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- fmt.Errorf("health check panicked: %v", rec)
			}
		}()
		done <- checker.HealthCheck(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("health check abandoned: %w", ctx.Err())
	}
}
