// Package worker defines worker contracts for asynchronous field mapping.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/fieldmap/internal/adapters/mq/queue"
	"github.com/okian/fieldmap/internal/domain/memo"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/pkg/logger"
	"github.com/okian/fieldmap/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 4 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Mapper maps one field name against a resume source.
type Mapper interface {
	MapField(ctx context.Context, name string, source *model.Resume, index *int) (*model.MappingResult, error)
}

// Queue defines how workers receive jobs.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Job
}

// Worker processes mapping jobs and delivers results through each job's
// callback.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing mapping jobs.
type InMemoryWorker struct {
	queue  Queue
	mapper Mapper
	cache  memo.Cache
	name   string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options. cache
// may be nil, disabling memoization.
func NewInMemoryWorker(q Queue, mapper Mapper, cache memo.Cache, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:    q,
		mapper:   mapper,
		cache:    cache,
		name:     "worker", // default name
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
		logger:   logger.Get().Named("worker"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer func() {
		close(w.done)
	}()

	jobs := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case job, ok := <-jobs:
			if !ok {
				// Channel closed, worker should stop
				return
			}
			if err := w.processJob(ctx, job); err != nil {
				w.logger.Error(ctx, "error processing job", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processJob maps one field name. Identical names within a batch hit the
// memo cache instead of re-running the matcher.
func (w *InMemoryWorker) processJob(ctx context.Context, job queue.Job) error {
	start := time.Now()
	defer func() {
		metrics.RecordMappingLatency(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	key := job.BatchID + "|" + job.Name
	if w.cache != nil {
		if cached, ok := w.cache.Get(ctx, key); ok {
			metrics.RecordMemoHit()
			res, _ := cached.(*model.MappingResult)
			job.Deliver(job.Seq, res, nil)
			return nil
		}
		metrics.RecordMemoMiss()
	}

	res, err := w.mapper.MapField(ctx, job.Name, job.Source, nil)
	if err != nil {
		metrics.RecordMappingError("map_field")
		job.Deliver(job.Seq, nil, err)
		return fmt.Errorf("mapping %q: %w", job.Name, err)
	}

	if w.cache != nil {
		w.cache.Put(ctx, key, res)
	}
	if res != nil {
		metrics.RecordMapping(string(res.MatchKind))
	} else {
		metrics.RecordMapping(string(model.MatchNone))
	}
	job.Deliver(job.Seq, res, nil)
	return nil
}

// Pool manages multiple workers draining one queue.
type Pool struct {
	workers []*InMemoryWorker

	// Shutdown control
	shutdown chan struct{}

	queue Queue

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, q Queue, mapper Mapper, cache memo.Cache) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:  make([]*InMemoryWorker, workerCount),
		shutdown: make(chan struct{}),
		queue:    q,
		logger:   logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			q,
			mapper,
			cache,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	for _, w := range p.workers {
		select {
		case <-w.done:
			// Worker finished
		case <-time.After(workerShutdownTimeout):
			// Worker timeout
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	// First close the queue to stop new jobs.
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	close(p.shutdown)

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}
