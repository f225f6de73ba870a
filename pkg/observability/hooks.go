// Package observability provides hooks for metrics, tracing, and logging.
//
// The generator packages call these hooks without depending on a specific
// observability backend. Consumers register implementations at startup to
// receive events about pipeline runs and emitted documents.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetEmitHooks(&myEmitHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRunStart(ctx, "mountinghole", len(table))
//	// ... generate ...
//	observability.Pipeline().OnRunComplete(ctx, "mountinghole", n, bytes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from generator runs.
type PipelineHooks interface {
	// OnRunStart is called once per run, before any footprint is built.
	OnRunStart(ctx context.Context, family string, entries int)

	// OnFootprintComplete is called after each footprint is rendered and
	// emitted, or has failed.
	OnFootprintComplete(ctx context.Context, name string, size int, duration time.Duration, err error)

	// OnRunComplete is called once per started run.
	OnRunComplete(ctx context.Context, family string, footprints, size int, duration time.Duration, err error)
}

// =============================================================================
// Emit Hooks
// =============================================================================

// EmitHooks receives events from document sinks.
type EmitHooks interface {
	// OnEmit records a document write to target (a path or "stream").
	OnEmit(ctx context.Context, target string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnRunStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnFootprintComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnRunComplete(context.Context, string, int, int, time.Duration, error) {}

// NoopEmitHooks is a no-op implementation of EmitHooks.
type NoopEmitHooks struct{}

func (NoopEmitHooks) OnEmit(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	emitHooks     EmitHooks     = NoopEmitHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any run.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetEmitHooks registers custom emit hooks.
func SetEmitHooks(h EmitHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		emitHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Emit returns the registered emit hooks.
func Emit() EmitHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return emitHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	emitHooks = NoopEmitHooks{}
}
