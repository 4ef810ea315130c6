// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about batch elevation runs and alignments.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the core packages stay
// free of any particular metrics or tracing backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetAlignHooks(&myAlignHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnBatchStart(ctx, len(ids))
//	// ... process elements ...
//	observability.Pipeline().OnBatchComplete(ctx, succeeded, failed, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the batch elevation workflow.
type PipelineHooks interface {
	// OnBatchStart is called once before any element is processed.
	OnBatchStart(ctx context.Context, count int)

	// OnElementComplete is called per element. kind is the placement kind of
	// the element's frame, err is nil on success.
	OnElementComplete(ctx context.Context, id, kind string, err error)

	// OnBatchComplete is called after the batch transaction finished. err is
	// non-nil only when the whole batch was rolled back.
	OnBatchComplete(ctx context.Context, succeeded, failed int, duration time.Duration, err error)
}

// =============================================================================
// Align Hooks
// =============================================================================

// AlignHooks receives events from the alignment workflow.
type AlignHooks interface {
	// OnPlan records a computed (or failed) alignment plan.
	OnPlan(ctx context.Context, reference, target string, angle float64, err error)

	// OnApply records the rotation of the proxy element.
	OnApply(ctx context.Context, proxy string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnBatchStart(context.Context, int)                               {}
func (NoopPipelineHooks) OnElementComplete(context.Context, string, string, error)        {}
func (NoopPipelineHooks) OnBatchComplete(context.Context, int, int, time.Duration, error) {}

// NoopAlignHooks is a no-op implementation of AlignHooks.
type NoopAlignHooks struct{}

func (NoopAlignHooks) OnPlan(context.Context, string, string, float64, error) {}
func (NoopAlignHooks) OnApply(context.Context, string, time.Duration, error)  {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	alignHooks    AlignHooks    = NoopAlignHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any batch runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetAlignHooks registers custom alignment hooks.
// This should be called once at application startup before any alignment.
func SetAlignHooks(h AlignHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		alignHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Align returns the registered alignment hooks.
func Align() AlignHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return alignHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	alignHooks = NoopAlignHooks{}
}
