// Package scheduler enqueues recurring jobs on the worker pool.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/courtside/pickem/internal/logger"
	"github.com/courtside/pickem/internal/worker"
)

// LogMsgJobSkipped is logged when a tick finds the worker queue full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. With immediate set the
// first run is enqueued right away instead of after one interval.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if immediate {
			s.enqueue(name, job)
		}

		for {
			select {
			case <-ticker.C:
				s.enqueue(name, job)
			case <-s.quit:
				return
			}
		}
	}()
}

// A tick that finds the queue full is dropped; the next tick retries
func (s *Scheduler) enqueue(name string, job worker.Job) {
	if !s.workerPool.Enqueue(job) {
		logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", name)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
