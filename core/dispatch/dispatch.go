package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"listing-manager/core/metrics"

	"go.uber.org/zap"
)

// Outcome classifies the terminal state of a single dispatched call.
type Outcome string

const (
	OutcomeSuccess       Outcome = "success"
	OutcomeTimeout       Outcome = "timeout"
	OutcomeError         Outcome = "error"
	OutcomeSkipped       Outcome = "skipped"
	OutcomeUnknownTarget Outcome = "unknown-target"
)

// SkipError signals that a target declined the call without it counting as a
// failure, e.g. a platform adapter whose credential is not configured.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return "skipped: " + e.Reason
}

// Skip returns a SkipError with the given reason.
func Skip(reason string) error {
	return &SkipError{Reason: reason}
}

// Target is a named external endpoint addressed by the dispatcher.
type Target interface {
	// Name returns the registered name of the target.
	Name() string
	// Call performs the remote operation for the given payload.
	Call(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// TargetFunc adapts a plain function to the Target interface.
type TargetFunc struct {
	TargetName string
	Fn         func(ctx context.Context, payload map[string]any) (map[string]any, error)
}

func (t TargetFunc) Name() string { return t.TargetName }

func (t TargetFunc) Call(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return t.Fn(ctx, payload)
}

// Registry holds named targets. Registration order defines the default
// dispatch order.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	targets map[string]Target
}

// NewRegistry creates an empty target registry.
func NewRegistry() *Registry {
	return &Registry{targets: make(map[string]Target)}
}

// Register adds a target under its name. Registering the same name twice
// replaces the target but keeps its original position.
func (r *Registry) Register(t Target) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.targets[t.Name()]; !exists {
		r.order = append(r.order, t.Name())
	}
	r.targets[t.Name()] = t
}

// Lookup returns the target registered under name.
func (r *Registry) Lookup(name string) (Target, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.targets[name]
	return t, ok
}

// Names returns all registered target names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Result is the terminal outcome of one dispatched call.
type Result struct {
	Target  string         `json:"target"`
	Outcome Outcome        `json:"outcome"`
	Payload map[string]any `json:"payload,omitempty"`
	Reason  string         `json:"reason,omitempty"`
}

// Dispatcher issues independent concurrent calls to named targets under a
// per-call timeout. One target's failure or timeout never cancels or delays
// the others; every target produces exactly one terminal Result.
type Dispatcher struct {
	registry *Registry
	logger   *zap.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, logger: logger}
}

// Registry returns the dispatcher's target registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch calls every named target concurrently with the same payload and
// collects one Result per target, preserving the caller-supplied order.
// Unknown names short-circuit to OutcomeUnknownTarget without invoking
// anything. Dispatch returns once every call has terminated; since all calls
// run concurrently the wall-clock bound is roughly perCallTimeout.
func (d *Dispatcher) Dispatch(ctx context.Context, names []string, payload map[string]any, perCallTimeout time.Duration) []Result {
	results := make([]Result, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		target, ok := d.registry.Lookup(name)
		if !ok {
			results[i] = Result{Target: name, Outcome: OutcomeUnknownTarget}
			metrics.DispatchOutcomes.WithLabelValues(name, string(OutcomeUnknownTarget)).Inc()
			continue
		}

		wg.Add(1)
		go func(i int, name string, target Target) {
			defer wg.Done()
			results[i] = d.call(ctx, name, target, payload, perCallTimeout)
		}(i, name, target)
	}
	wg.Wait()

	return results
}

// call runs a single target call bounded by perCallTimeout and converts its
// termination into a Result. Errors and panics are captured, never re-raised.
func (d *Dispatcher) call(ctx context.Context, name string, target Target, payload map[string]any, perCallTimeout time.Duration) Result {
	callCtx, cancel := context.WithTimeout(ctx, perCallTimeout)
	defer cancel()

	type callReturn struct {
		payload map[string]any
		err     error
	}

	done := make(chan callReturn, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callReturn{err: fmt.Errorf("target panicked: %v", r)}
			}
		}()
		p, err := target.Call(callCtx, payload)
		done <- callReturn{payload: p, err: err}
	}()

	var result Result
	select {
	case <-callCtx.Done():
		// The adapter goroutine is abandoned; its buffered send cannot block.
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			result = Result{Target: name, Outcome: OutcomeTimeout, Reason: callCtx.Err().Error()}
		} else {
			result = Result{Target: name, Outcome: OutcomeError, Reason: callCtx.Err().Error()}
		}
	case ret := <-done:
		result = d.classify(name, ret.payload, ret.err)
	}

	metrics.DispatchOutcomes.WithLabelValues(name, string(result.Outcome)).Inc()
	if result.Outcome != OutcomeSuccess {
		d.logger.Debug("Dispatch call did not succeed",
			zap.String("target", name),
			zap.String("outcome", string(result.Outcome)),
			zap.String("reason", result.Reason),
		)
	}
	return result
}

func (d *Dispatcher) classify(name string, payload map[string]any, err error) Result {
	var skip *SkipError
	switch {
	case err == nil:
		return Result{Target: name, Outcome: OutcomeSuccess, Payload: payload}
	case errors.Is(err, context.DeadlineExceeded):
		return Result{Target: name, Outcome: OutcomeTimeout, Reason: err.Error()}
	case errors.As(err, &skip):
		return Result{Target: name, Outcome: OutcomeSkipped, Reason: skip.Reason}
	default:
		return Result{Target: name, Outcome: OutcomeError, Reason: err.Error()}
	}
}
