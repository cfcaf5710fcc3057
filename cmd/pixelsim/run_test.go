package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestStopOnSignalRelease(t *testing.T) {
	var stopped atomic.Int32
	release := stopOnSignal(context.Background(), func() { stopped.Add(1) })
	release()
	if n := stopped.Load(); n != 0 {
		t.Errorf("stop called %d times after release, expected 0", n)
	}
}

func TestStopOnSignalParentDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	called := make(chan struct{})
	release := stopOnSignal(ctx, func() { close(called) })

	cancel()
	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("stop not called after the parent context was cancelled")
	}
	release()
}
