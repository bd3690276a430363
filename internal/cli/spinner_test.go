package cli

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var w syncBuffer
	s := newSpinner(context.Background(), &w, "Generating...").start()
	time.Sleep(100 * time.Millisecond)
	s.stop()
	s.stop()
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	var w syncBuffer
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, &w, "Generating...").start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after cancel")
	}
	s.stop()
}

func TestWithSpinner(t *testing.T) {
	var w syncBuffer
	got, err := withSpinner(context.Background(), &w, "Working", func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Errorf("withSpinner = %d, %v", got, err)
	}

	boom := errors.New("boom")
	if _, err := withSpinner(context.Background(), &w, "Working", func() (string, error) { return "", boom }); err != boom {
		t.Errorf("err = %v", err)
	}
}
