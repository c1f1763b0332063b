package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer shared with the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerNotTerminal(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, "Rendering...")
	if s.animate {
		t.Fatal("spinner should not animate on a buffer")
	}
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if got := buf.String(); got != "" {
		t.Errorf("output = %q, want empty", got)
	}
	if s.Cancelled() {
		t.Error("Cancelled() = true after Stop, want false")
	}
}

func TestSpinnerAnimates(t *testing.T) {
	var buf syncBuffer
	s := newSpinnerTo(context.Background(), &buf, "Rendering...")
	s.animate = true
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if got := buf.String(); !strings.Contains(got, "Rendering...") {
		t.Errorf("output = %q, want spinner message", got)
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerTo(ctx, &syncBuffer{}, "Rendering...")
	s.Start()
	cancel()
	time.Sleep(50 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation, want true")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	s := newSpinnerTo(ctx, &syncBuffer{}, "Rendering...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after timeout, want true")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, "Rendering...")
	s.Start()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, "Rendering...")
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, "Rendering...")
	s.Start()
	s.StopWithError("Render failed")
}
