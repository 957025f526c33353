package worker

import (
	"context"
	"sync"
	"time"

	"github.com/courtside/pickem/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// registerTimer replaces any timer already registered under name
func (w *BaseWorker) registerTimer(name string, timer *time.Timer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if prev, ok := w.timers[name]; ok {
		prev.Stop()
	}
	w.timers[name] = timer
}

func (w *BaseWorker) stopping() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// track runs fn in a goroutine that shutdown waits for
func (w *BaseWorker) track(fn func()) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		fn()
	}()
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.once.Do(func() { close(w.shutdown) })

	// Cancel all pending timers
	w.mu.Lock()
	for name, timer := range w.timers {
		timer.Stop()
		log.Info("Cancelled pending "+workerName+" execution", "timer", name)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
