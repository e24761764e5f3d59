// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-kns/internal/logger"
)

const defaultQueueSize = 64

type queuedJob struct {
	ctx    context.Context
	job    Job
	result chan error
}

// Queue runs submitted jobs one at a time, in submission order, on a single
// background goroutine.
type Queue struct {
	jobs   chan queuedJob
	logger *logger.Logger

	mu      sync.RWMutex
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// NewQueue creates an idle queue buffering up to size pending jobs.
func NewQueue(size int, log *logger.Logger) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		jobs:   make(chan queuedJob, size),
		logger: log,
	}
}

// Run implements [Worker]. It starts the consumer goroutine and returns
// immediately. Calling it again is a no-op.
func (q *Queue) Run() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.closed {
		return
	}
	q.started = true

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for qj := range q.jobs {
			qj.result <- q.execute(qj)
		}
	}()
}

func (q *Queue) execute(qj queuedJob) (err error) {
	if err = qj.ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Str("func", "Queue.execute").Interface("panic", r).Msg("job panicked")
			err = fmt.Errorf("%w: %v", ErrJobPanicked, r)
		}
	}()

	return qj.job(qj.ctx)
}

// Submit enqueues job and returns a channel that receives its result
// exactly once. Callers may wait on it or drop it.
func (q *Queue) Submit(ctx context.Context, job Job) <-chan error {
	result := make(chan error, 1)

	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		result <- ErrQueueClosed
		return result
	}

	select {
	case q.jobs <- queuedJob{ctx: ctx, job: job, result: result}:
	case <-ctx.Done():
		result <- ctx.Err()
	}

	return result
}

// Do submits job and waits for its result or for ctx to end.
func (q *Queue) Do(ctx context.Context, job Job) error {
	select {
	case err := <-q.Submit(ctx, job):
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop refuses new jobs, lets every queued job finish and waits for the
// consumer to exit. Safe to call more than once.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.wg.Wait()
		return
	}
	q.closed = true
	started := q.started
	close(q.jobs)
	q.mu.Unlock()

	if !started {
		for qj := range q.jobs {
			qj.result <- ErrQueueClosed
		}
	}
	q.wg.Wait()
}
