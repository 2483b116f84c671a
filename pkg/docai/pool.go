package docai

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// ErrNotInitialized is returned by Submit while the pool is in the
// Uninitialized state, including after Cleanup.
var ErrNotInitialized = errors.New("document AI client not initialized")

type poolResult struct {
	value interface{}
	err   error
}

type poolJob struct {
	task func() (interface{}, error)
	done chan poolResult
}

// workerPool runs blocking extraction calls on a fixed number of
// workers so a request handler can await its own call without holding
// up any other request. Capacity bounds the number of in-flight
// backend calls; excess submits queue on the jobs channel.
//
// Lifecycle: Initialize → Submit... → Cleanup, both idempotent.
// Cleanup must not race with Submit; the server stops accepting
// requests before shutdown runs.
type workerPool struct {
	mu   sync.Mutex
	jobs chan poolJob
	wg   sync.WaitGroup
	size int
	log  *logrus.Logger
}

func newWorkerPool(size int, logger *logrus.Logger) *workerPool {
	if size <= 0 {
		size = defaultMaxWorkers
	}
	return &workerPool{size: size, log: logger}
}

func (p *workerPool) Initialize() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.jobs != nil {
		return
	}

	p.jobs = make(chan poolJob)
	p.wg.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.worker(p.jobs)
	}

	p.log.WithField("workers", p.size).Info("Initialized document AI worker pool")
}

// Cleanup drains in-flight work, waits for every worker to exit and
// returns the pool to Uninitialized.
func (p *workerPool) Cleanup() {
	p.mu.Lock()
	jobs := p.jobs
	p.jobs = nil
	p.mu.Unlock()

	if jobs == nil {
		return
	}

	close(jobs)
	p.wg.Wait()

	p.log.Info("Cleaned up document AI worker pool")
}

// Submit dispatches task onto a free worker and blocks the calling
// goroutine until the worker finishes or ctx expires. Worker errors
// propagate to the caller unchanged.
func (p *workerPool) Submit(ctx context.Context, task func() (interface{}, error)) (interface{}, error) {
	p.mu.Lock()
	jobs := p.jobs
	p.mu.Unlock()

	if jobs == nil {
		return nil, ErrNotInitialized
	}

	j := poolJob{task: task, done: make(chan poolResult, 1)}

	select {
	case jobs <- j:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-j.done:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *workerPool) worker(jobs <-chan poolJob) {
	defer p.wg.Done()

	for j := range jobs {
		start := time.Now()
		value, err := j.task()
		elapsed := time.Since(start)

		if err != nil {
			p.log.WithFields(logrus.Fields{
				"elapsed_seconds": elapsed.Seconds(),
				"error":           err.Error(),
			}).Error("Document processing failed")
		} else {
			p.log.WithFields(logrus.Fields{
				"elapsed_seconds": elapsed.Seconds(),
			}).Info("Document processing completed")
		}

		// done is buffered so an abandoned caller never blocks the worker.
		j.done <- poolResult{value: value, err: err}
	}
}
