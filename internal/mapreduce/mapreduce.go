package mapreduce

import (
	"context"
	"fmt"
	"sync"

	"DataSci/internal/logger"
)

// KeyValue is the intermediate pair emitted by a mapper.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Mapper turns one input into zero or more intermediate pairs.
type Mapper[I any, K comparable, V any] func(input I) ([]KeyValue[K, V], error)

// Reducer turns every value collected for a key into zero or more outputs.
type Reducer[K comparable, V any, O any] func(key K, values []V) ([]O, error)

// Options configures an Engine. Zero values select sequential execution with
// a single attempt per call.
type Options struct {
	Parallelism int
	MaxRetries  int
	Logger      *logger.Logger
}

// Stats describes the most recent run of an Engine.
type Stats struct {
	Inputs  int
	Pairs   int
	Keys    int
	Outputs int
}

// Engine is the MapReduce execution engine.
type Engine struct {
	parallelism int
	maxRetries  int
	logger      *logger.Logger

	mu   sync.Mutex
	last Stats
}

// NewEngine creates a new MapReduce engine.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		parallelism: opts.Parallelism,
		maxRetries:  opts.MaxRetries,
		logger:      opts.Logger,
	}
	if e.parallelism < 1 {
		e.parallelism = 1
	}
	if e.maxRetries < 1 {
		e.maxRetries = 1
	}
	if e.logger == nil {
		e.logger = logger.New("WARN")
	}
	e.logger = e.logger.Named("mapreduce")
	return e
}

// Parallelism reports how many mapper or reducer calls may run at once.
func (e *Engine) Parallelism() int {
	return e.parallelism
}

// LastStats returns the counters of the last completed run.
func (e *Engine) LastStats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.last
}

func (e *Engine) record(s Stats) {
	e.mu.Lock()
	e.last = s
	e.mu.Unlock()
}

// MapReduce runs mapper over inputs and reducer over each collected key,
// sequentially and with a single attempt per call.
func MapReduce[I any, K comparable, V any, O any](
	inputs []I,
	mapper Mapper[I, K, V],
	reducer Reducer[K, V, O],
) ([]O, error) {
	return Run(context.Background(), NewEngine(Options{}), inputs, mapper, reducer)
}

// Run executes a job on e. Keys reach the reducer in the order they were
// first emitted and values keep emission order, so the output is identical
// for any parallelism.
func Run[I any, K comparable, V any, O any](
	ctx context.Context,
	e *Engine,
	inputs []I,
	mapper Mapper[I, K, V],
	reducer Reducer[K, V, O],
) ([]O, error) {
	intermediates, err := mapPhase(ctx, e, inputs, mapper)
	if err != nil {
		return nil, err
	}

	keys, grouped, pairs := shuffle(intermediates)

	outputs, err := reducePhase(ctx, e, keys, grouped, reducer)
	if err != nil {
		return nil, err
	}

	stats := Stats{Inputs: len(inputs), Pairs: pairs, Keys: len(keys), Outputs: len(outputs)}
	e.record(stats)
	e.logger.Debug("job finished: %s", logger.Fields(map[string]interface{}{
		"inputs":  stats.Inputs,
		"pairs":   stats.Pairs,
		"keys":    stats.Keys,
		"outputs": stats.Outputs,
	}))
	return outputs, nil
}

// mapPhase calls mapper once per input. Results are slotted by input index.
func mapPhase[I any, K comparable, V any](
	ctx context.Context,
	e *Engine,
	inputs []I,
	mapper Mapper[I, K, V],
) ([][]KeyValue[K, V], error) {
	results := make([][]KeyValue[K, V], len(inputs))

	err := e.forEach(ctx, len(inputs), func(ctx context.Context, i int) error {
		return e.attempt(ctx, fmt.Sprintf("mapper on input %d", i), func() error {
			kvs, err := mapper(inputs[i])
			if err != nil {
				return err
			}
			results[i] = kvs
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("map phase: %w", err)
	}
	return results, nil
}

// shuffle groups values by key, remembering first-emission order of keys.
func shuffle[K comparable, V any](intermediates [][]KeyValue[K, V]) ([]K, map[K][]V, int) {
	var keys []K
	grouped := make(map[K][]V)
	pairs := 0

	for _, kvs := range intermediates {
		for _, kv := range kvs {
			if _, seen := grouped[kv.Key]; !seen {
				keys = append(keys, kv.Key)
			}
			grouped[kv.Key] = append(grouped[kv.Key], kv.Value)
			pairs++
		}
	}

	return keys, grouped, pairs
}

func reducePhase[K comparable, V any, O any](
	ctx context.Context,
	e *Engine,
	keys []K,
	grouped map[K][]V,
	reducer Reducer[K, V, O],
) ([]O, error) {
	slots := make([][]O, len(keys))

	err := e.forEach(ctx, len(keys), func(ctx context.Context, i int) error {
		k := keys[i]
		return e.attempt(ctx, fmt.Sprintf("reducer for key %v", k), func() error {
			out, err := reducer(k, grouped[k])
			if err != nil {
				return err
			}
			slots[i] = out
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reduce phase: %w", err)
	}

	var outputs []O
	for _, out := range slots {
		outputs = append(outputs, out...)
	}
	return outputs, nil
}

// attempt retries fn up to maxRetries times.
func (e *Engine) attempt(ctx context.Context, what string, fn func() error) error {
	var err error
	for attempt := 0; attempt < e.maxRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err = fn(); err == nil {
			if attempt > 0 {
				e.logger.Info("%s recovered after %d attempts", what, attempt+1)
			}
			return nil
		}
		e.logger.Warn("%s failed (attempt %d/%d): %v", what, attempt+1, e.maxRetries, err)
	}
	return fmt.Errorf("%s failed after %d attempts: %w", what, e.maxRetries, err)
}

// forEach runs fn for 0..n-1 with at most parallelism calls in flight. The
// first error cancels the remaining calls and is returned.
func (e *Engine) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	sem := make(chan struct{}, e.parallelism)

dispatch:
	for i := 0; i < n; i++ {
		select {
		case sem <- struct{}{}: // Acquire semaphore
		case <-ctx.Done():
			break dispatch
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore

			if err := fn(ctx, i); err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}(i)
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
