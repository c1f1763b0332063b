package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnLayoutStart(ctx, 4)
	p.OnLayoutComplete(ctx, 35, time.Millisecond, nil)
	p.OnRenderStart(ctx, []string{"dae"})
	p.OnRenderComplete(ctx, []string{"dae"}, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/render")
	h.OnResponse(ctx, "POST", "/render", 200, time.Millisecond)
}

type testPipelineHooks struct{ NoopPipelineHooks }

type testCacheHooks struct{ NoopCacheHooks }

type testHTTPHooks struct{ NoopHTTPHooks }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	p := &testPipelineHooks{}
	SetPipelineHooks(p)
	if Pipeline() != p {
		t.Error("SetPipelineHooks should set custom hooks")
	}
	c := &testCacheHooks{}
	SetCacheHooks(c)
	if Cache() != c {
		t.Error("SetCacheHooks should set custom hooks")
	}
	h := &testHTTPHooks{}
	SetHTTPHooks(h)
	if HTTP() != h {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	SetPipelineHooks(nil)
	if Pipeline() != p {
		t.Error("SetPipelineHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}
