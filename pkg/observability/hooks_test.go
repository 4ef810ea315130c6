package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnBatchStart(ctx, 3)
	p.OnElementComplete(ctx, "w1", "curve_based", nil)
	p.OnElementComplete(ctx, "w2", "bounded_volume_only", errors.New("no bounds"))
	p.OnBatchComplete(ctx, 2, 1, time.Second, nil)

	// Align hooks
	a := NoopAlignHooks{}
	a.OnPlan(ctx, "grid-a", "wall-1", 0.5, nil)
	a.OnApply(ctx, "wall-1", time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Align().(NoopAlignHooks); !ok {
		t.Error("Align() should return NoopAlignHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customAlign := &testAlignHooks{}
	SetAlignHooks(customAlign)
	if Align() != customAlign {
		t.Error("SetAlignHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Align().(NoopAlignHooks); !ok {
		t.Error("Reset() should restore NoopAlignHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAlignHooks{}
	SetAlignHooks(custom)

	// Setting nil should be ignored
	SetAlignHooks(nil)

	if Align() != custom {
		t.Error("SetAlignHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testAlignHooks struct{ NoopAlignHooks }
