// Package service wires the mapping engine, queue, worker pool, and memo
// cache into the service consumed by the CLIs.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/google/uuid"

	jobqueue "github.com/okian/fieldmap/internal/adapters/mq/queue"
	workerpool "github.com/okian/fieldmap/internal/adapters/mq/worker"
	"github.com/okian/fieldmap/internal/domain/memo"
	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/internal/domain/selection"
	"github.com/okian/fieldmap/internal/engine"
	"github.com/okian/fieldmap/pkg/logger"
	"github.com/okian/fieldmap/pkg/metrics"
)

// Service exposes field mapping as a long-lived component with a worker
// pool for batches.
type Service struct {
	mu sync.RWMutex

	// Core components
	registry *schema.Registry
	mapper   *engine.Engine
	jobQueue jobqueue.Queue
	pool     *workerpool.Pool
	cache    memo.Cache

	// Configuration
	workerCount   int
	queueSize     int
	memoSize      int
	threshold     float64
	strategy      selection.Strategy
	weights       map[string]float64
	extraVariants map[string][]string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithMemoSize sets the size of the batch memoization cache.
func WithMemoSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.memoSize = size
		}
	}
}

// WithThreshold sets the fuzzy acceptance threshold.
func WithThreshold(threshold float64) Option {
	return func(s *Service) {
		if threshold > 0 && threshold <= 1 {
			s.threshold = threshold
		}
	}
}

// WithStrategy sets the default selection strategy for repeated sections.
func WithStrategy(strategy selection.Strategy) Option {
	return func(s *Service) {
		if strategy.Valid() {
			s.strategy = strategy
		}
	}
}

// WithSensitivityWeights overrides sensitivity weights per canonical field.
func WithSensitivityWeights(weights map[string]float64) Option {
	return func(s *Service) {
		s.weights = weights
	}
}

// WithExtraVariants registers additional normalized variants per canonical
// field.
func WithExtraVariants(variants map[string][]string) Option {
	return func(s *Service) {
		s.extraVariants = variants
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU() * 2,
		queueSize:   10000,
		memoSize:    10000,
		threshold:   engine.DefaultThreshold,
		strategy:    selection.MostRecent,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the registry, engine, queue, and worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	s.logger.Info(ctx, "starting field mapping service...")

	var regOpts []schema.Option
	if len(s.weights) > 0 {
		regOpts = append(regOpts, schema.WithSensitivityOverrides(s.weights))
	}
	if len(s.extraVariants) > 0 {
		regOpts = append(regOpts, schema.WithExtraVariants(s.extraVariants))
	}
	registry, err := schema.NewRegistry(regOpts...)
	if err != nil {
		return fmt.Errorf("building registry: %w", err)
	}
	s.registry = registry
	metrics.UpdateRegistryFields(registry.NumFields())

	s.mapper = engine.New(registry,
		engine.WithThreshold(s.threshold),
		engine.WithStrategy(s.strategy),
	)
	s.cache = memo.NewInMemoryCache(
		memo.WithMaxSize(s.memoSize),
	)
	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
		jobqueue.WithBufferSize(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.jobQueue, s.mapper, s.cache)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "field mapping service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("fields", registry.NumFields()),
		logger.String("schemaVersion", registry.Version().String()),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping field mapping service...")

	if s.pool != nil {
		_ = s.pool.Shutdown(ctx)
	}

	s.started = false
	s.logger.Info(ctx, "field mapping service stopped")
}

// MapField maps one field name against the resume source.
func (s *Service) MapField(ctx context.Context, name string, source *model.Resume, index *int) (*model.MappingResult, error) {
	s.mu.RLock()
	mapper := s.mapper
	s.mu.RUnlock()
	if mapper == nil {
		return nil, ErrNotStarted
	}

	res, err := mapper.MapField(ctx, name, source, index)
	if err != nil {
		metrics.RecordMappingError("map_field")
		return nil, err
	}
	if res == nil {
		metrics.RecordMapping(string(model.MatchNone))
		s.logger.Debug(ctx, "no canonical field matched",
			logger.String("field", name),
		)
		return nil, nil
	}
	metrics.RecordMapping(string(res.MatchKind))
	if res.MatchKind == model.MatchFuzzy {
		metrics.RecordFuzzySimilarity(res.RawScore)
	}
	metrics.RecordConfidence(res.Confidence)
	s.logger.Debug(ctx, "mapped field",
		logger.String("field", name),
		logger.String("canonical", res.CanonicalField),
		logger.String("kind", string(res.MatchKind)),
		logger.Float64("confidence", res.Confidence),
	)
	return res, nil
}

// MapBatch maps a batch of field names concurrently through the worker
// pool. The returned slice mirrors the input order; entries are nil where
// no canonical field matched. Repeated names inside a batch are served
// from the memo cache.
func (s *Service) MapBatch(ctx context.Context, names []string, source *model.Resume) ([]*model.MappingResult, error) {
	s.mu.RLock()
	q := s.jobQueue
	s.mu.RUnlock()
	if q == nil {
		return nil, ErrNotStarted
	}

	batchID := uuid.NewString()
	metrics.RecordBatchSize(len(names))

	results := make([]*model.MappingResult, len(names))
	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		batchErr error
	)
	deliver := func(seq int, res *model.MappingResult, err error) {
		defer wg.Done()
		if err != nil {
			errMu.Lock()
			if batchErr == nil {
				batchErr = err
			}
			errMu.Unlock()
			return
		}
		results[seq] = res
	}

	// Waiting on the group directly could hang if the context is
	// canceled while workers hold undelivered jobs, so the wait itself
	// races the context.
	wait := func() error {
		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for i, name := range names {
		wg.Add(1)
		job := jobqueue.Job{
			Seq:     i,
			BatchID: batchID,
			Name:    name,
			Source:  source,
			Deliver: deliver,
		}
		if !q.Enqueue(ctx, job) {
			wg.Done()
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("batch %s: %w", batchID, err)
			}
			if err := wait(); err != nil {
				return nil, fmt.Errorf("batch %s: %w", batchID, err)
			}
			return nil, fmt.Errorf("enqueueing job %d of batch %s: %w", i, batchID, jobqueue.ErrQueueFull)
		}
	}
	if err := wait(); err != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, err)
	}

	if batchErr != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, batchErr)
	}
	s.logger.Debug(ctx, "batch mapped",
		logger.String("batchID", batchID),
		logger.Int("size", len(names)),
	)
	return results, nil
}

// MapFields maps a batch sequentially and keys results by input name,
// omitting unmatched names.
func (s *Service) MapFields(ctx context.Context, names []string, source *model.Resume) (map[string]*model.MappingResult, error) {
	s.mu.RLock()
	mapper := s.mapper
	s.mu.RUnlock()
	if mapper == nil {
		return nil, ErrNotStarted
	}
	return mapper.MapFields(ctx, names, source)
}

// Explain traces one mapping decision end to end.
func (s *Service) Explain(ctx context.Context, name string, source *model.Resume, index *int) (*model.Trace, error) {
	s.mu.RLock()
	mapper := s.mapper
	s.mu.RUnlock()
	if mapper == nil {
		return nil, ErrNotStarted
	}
	return mapper.Explain(ctx, name, source, index)
}

// FuzzyMatch resolves a name to a canonical field identifier without a
// value resolution.
func (s *Service) FuzzyMatch(name string, threshold float64) (string, float64, bool) {
	s.mu.RLock()
	mapper := s.mapper
	s.mu.RUnlock()
	if mapper == nil {
		return "", 0, false
	}
	field, score, ok := mapper.FuzzyMatchField(name, threshold)
	return field.String(), score, ok
}

// Fields enumerates the canonical field identifiers.
func (s *Service) Fields() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil
	}
	fields := s.registry.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.String()
	}
	return out
}

// Variants lists the known variant strings for one canonical field.
func (s *Service) Variants(field string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil
	}
	return s.registry.Variants(schema.Field(field))
}

// Version reports the schema version stamped onto results.
func (s *Service) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return ""
	}
	return s.registry.Version().String()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"memoSize":    s.memoSize,
		"threshold":   s.threshold,
		"strategy":    string(s.strategy),
	}
	if s.started {
		stats["queueLength"] = s.jobQueue.Len(context.Background())
		stats["memoEntries"] = s.cache.Size()
		stats["schemaVersion"] = s.registry.Version().String()
		stats["fields"] = s.registry.NumFields()
	}
	return stats
}
