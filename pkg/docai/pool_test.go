package docai

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSubmitBeforeInitialize(t *testing.T) {
	p := newWorkerPool(2, testLogger())

	_, err := p.Submit(context.Background(), func() (interface{}, error) { return nil, nil })
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestSubmitAfterCleanup(t *testing.T) {
	p := newWorkerPool(2, testLogger())
	p.Initialize()
	p.Cleanup()

	_, err := p.Submit(context.Background(), func() (interface{}, error) { return nil, nil })
	if !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized after cleanup, got %v", err)
	}
}

func TestLifecycleIsIdempotent(t *testing.T) {
	p := newWorkerPool(2, testLogger())

	p.Cleanup() // no-op while uninitialized
	p.Initialize()
	p.Initialize() // no-op while ready

	value, err := p.Submit(context.Background(), func() (interface{}, error) { return "ok", nil })
	if err != nil || value.(string) != "ok" {
		t.Fatalf("submit failed after repeated initialize: %v %v", value, err)
	}

	p.Cleanup()
	p.Cleanup() // no-op once released
}

func TestPoolCanBeReinitialized(t *testing.T) {
	p := newWorkerPool(1, testLogger())
	p.Initialize()
	p.Cleanup()
	p.Initialize()
	defer p.Cleanup()

	value, err := p.Submit(context.Background(), func() (interface{}, error) { return 42, nil })
	if err != nil || value.(int) != 42 {
		t.Fatalf("submit failed after re-initialize: %v %v", value, err)
	}
}

func TestSubmitPropagatesTaskError(t *testing.T) {
	p := newWorkerPool(1, testLogger())
	p.Initialize()
	defer p.Cleanup()

	taskErr := errors.New("backend unavailable")
	_, err := p.Submit(context.Background(), func() (interface{}, error) { return nil, taskErr })
	if !errors.Is(err, taskErr) {
		t.Fatalf("expected task error unchanged, got %v", err)
	}
}

func TestSubmitHonorsContextDeadline(t *testing.T) {
	p := newWorkerPool(1, testLogger())
	p.Initialize()
	defer p.Cleanup()

	release := make(chan struct{})
	go p.Submit(context.Background(), func() (interface{}, error) {
		<-release
		return nil, nil
	})

	// The single worker is busy, so the second submit queues until its
	// deadline expires.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := p.Submit(ctx, func() (interface{}, error) { return nil, nil })
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}

	close(release)
}

func TestConcurrencyBound(t *testing.T) {
	p := newWorkerPool(2, testLogger())
	p.Initialize()
	defer p.Cleanup()

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup

	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := p.Submit(context.Background(), func() (interface{}, error) {
				current := atomic.AddInt32(&inFlight, 1)
				for {
					observed := atomic.LoadInt32(&maxInFlight)
					if current <= observed || atomic.CompareAndSwapInt32(&maxInFlight, observed, current) {
						break
					}
				}
				time.Sleep(30 * time.Millisecond)
				atomic.AddInt32(&inFlight, -1)
				return nil, nil
			})
			if err != nil {
				t.Errorf("submit failed: %v", err)
			}
		}()
	}

	wg.Wait()

	if got := atomic.LoadInt32(&maxInFlight); got > 2 {
		t.Fatalf("more than 2 tasks ran concurrently: %d", got)
	}
}

func TestCleanupDrainsInFlightWork(t *testing.T) {
	p := newWorkerPool(2, testLogger())
	p.Initialize()

	var completed int32
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Submit(context.Background(), func() (interface{}, error) {
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&completed, 1)
				return nil, nil
			})
		}()
	}

	wg.Wait()
	p.Cleanup()

	if got := atomic.LoadInt32(&completed); got != 4 {
		t.Fatalf("expected all submitted work to complete before cleanup returned, got %d", got)
	}
}
