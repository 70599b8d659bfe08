package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"DataSci/internal/grep"
	"DataSci/internal/jobs"
	"DataSci/internal/logger"
	"DataSci/internal/mapreduce"
	"DataSci/internal/store"
	"DataSci/internal/types"
)

// ErrRunNotFound is returned for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// Coordinator runs MapReduce jobs on a shared engine and keeps a record of
// every run. Runs execute synchronously in the caller's goroutine.
type Coordinator struct {
	engine *mapreduce.Engine
	store  *store.Store
	logger *logger.Logger

	mu      sync.RWMutex
	runs    map[string]*types.Run
	order   []string
	results map[string][]types.Pair
}

// NewCoordinator creates a coordinator. st may be nil, in which case runs are
// only kept in memory.
func NewCoordinator(engine *mapreduce.Engine, st *store.Store, lg *logger.Logger) *Coordinator {
	if lg == nil {
		lg = logger.New("INFO")
	}
	if engine == nil {
		engine = mapreduce.NewEngine(mapreduce.Options{Logger: lg})
	}

	c := &Coordinator{
		engine:  engine,
		store:   st,
		logger:  lg.Named("coordinator"),
		runs:    make(map[string]*types.Run),
		results: make(map[string][]types.Pair),
	}
	c.logger.Info("Coordinator initialized: parallelism=%d persistent=%t", engine.Parallelism(), st != nil)
	return c
}

// SubmitWordCount counts words across documents.
func (c *Coordinator) SubmitWordCount(ctx context.Context, documents []string) (types.Run, []jobs.WordCount, error) {
	var counts []jobs.WordCount
	run, err := c.execute(ctx, types.KindWordCount, "", len(documents), func(ctx context.Context) ([]types.Pair, error) {
		var err error
		counts, err = jobs.RunWordCount(ctx, c.engine, documents)
		if err != nil {
			return nil, err
		}
		pairs := make([]types.Pair, len(counts))
		for i, kv := range counts {
			pairs[i] = types.Pair{Key: kv.Key, Value: strconv.Itoa(kv.Value)}
		}
		return pairs, nil
	})
	return run, counts, err
}

// SubmitGrep searches documents for lines matching pattern. An invalid
// pattern is rejected before a run is recorded.
func (c *Coordinator) SubmitGrep(ctx context.Context, pattern string, documents []grep.Document) (types.Run, []grep.Match, error) {
	dg, err := grep.NewDistributedGrep(pattern)
	if err != nil {
		return types.Run{}, nil, err
	}

	var matches []grep.Match
	run, err := c.execute(ctx, types.KindGrep, "pattern="+dg.Pattern(), len(documents), func(ctx context.Context) ([]types.Pair, error) {
		var err error
		matches, err = dg.Search(ctx, c.engine, documents)
		if err != nil {
			return nil, err
		}
		pairs := make([]types.Pair, len(matches))
		for i, m := range matches {
			pairs[i] = types.Pair{Key: m.Line, Value: strings.Join(m.Documents, ", ")}
		}
		return pairs, nil
	})
	return run, matches, err
}

// execute moves a run through pending, running and completed or failed,
// persisting each transition.
func (c *Coordinator) execute(ctx context.Context, kind types.RunKind, detail string, inputs int, job func(ctx context.Context) ([]types.Pair, error)) (types.Run, error) {
	run := &types.Run{
		ID:        "run-" + uuid.New().String()[:8],
		Kind:      kind,
		Status:    types.RunPending,
		Detail:    detail,
		Inputs:    inputs,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.track(run); err != nil {
		return *run, err
	}
	c.logger.Info("Run submitted: run_id=%s kind=%s inputs=%d", run.ID, kind, inputs)

	if err := c.transition(run, types.RunRunning, nil, 0); err != nil {
		return *run, err
	}

	pairs, jobErr := job(ctx)
	if jobErr != nil {
		c.logger.Warn("Run failed: run_id=%s error=%v", run.ID, jobErr)
		if err := c.transition(run, types.RunFailed, jobErr, 0); err != nil {
			return *run, errors.Join(jobErr, err)
		}
		return c.snapshot(run), fmt.Errorf("run %s: %w", run.ID, jobErr)
	}

	if c.store != nil {
		if err := c.store.SavePairs(run.ID, pairs); err != nil {
			saveErr := fmt.Errorf("persisting output of %s: %w", run.ID, err)
			c.logger.Warn("Run failed: run_id=%s error=%v", run.ID, saveErr)
			if terr := c.transition(run, types.RunFailed, saveErr, 0); terr != nil {
				return c.snapshot(run), errors.Join(saveErr, terr)
			}
			return c.snapshot(run), saveErr
		}
	}
	c.mu.Lock()
	c.results[run.ID] = pairs
	c.mu.Unlock()

	if err := c.transition(run, types.RunCompleted, nil, len(pairs)); err != nil {
		return c.snapshot(run), err
	}
	c.logger.Info("Run completed: run_id=%s outputs=%d", run.ID, len(pairs))
	return c.snapshot(run), nil
}

func (c *Coordinator) track(run *types.Run) error {
	c.mu.Lock()
	c.runs[run.ID] = run
	c.order = append(c.order, run.ID)
	c.mu.Unlock()
	return c.persist(*run)
}

func (c *Coordinator) transition(run *types.Run, status types.RunStatus, runErr error, outputs int) error {
	c.mu.Lock()
	run.Status = status
	run.Outputs = outputs
	if runErr != nil {
		run.Error = runErr.Error()
	}
	snapshot := *run
	c.mu.Unlock()

	c.logger.Debug("Run %s is now %s", run.ID, status)
	return c.persist(snapshot)
}

func (c *Coordinator) persist(run types.Run) error {
	if c.store == nil {
		return nil
	}
	if err := c.store.SaveRun(run); err != nil {
		c.logger.Error("Failed to persist run %s: %v", run.ID, err)
		return fmt.Errorf("persisting run %s: %w", run.ID, err)
	}
	return nil
}

func (c *Coordinator) snapshot(run *types.Run) types.Run {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return *run
}

// GetRun returns the record of a run, consulting the store for runs from an
// earlier process.
func (c *Coordinator) GetRun(id string) (types.Run, error) {
	c.mu.RLock()
	run, ok := c.runs[id]
	if ok {
		out := *run
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	if c.store != nil {
		stored, err := c.store.GetRun(id)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return types.Run{}, err
		}
	}
	return types.Run{}, fmt.Errorf("%s: %w", id, ErrRunNotFound)
}

// Results returns the output pairs of a completed run.
func (c *Coordinator) Results(id string) ([]types.Pair, error) {
	if _, err := c.GetRun(id); err != nil {
		return nil, err
	}

	c.mu.RLock()
	pairs, ok := c.results[id]
	c.mu.RUnlock()
	if ok || c.store == nil {
		return pairs, nil
	}
	return c.store.Pairs(id)
}

// Runs lists every run, oldest first. With a store configured this includes
// runs recorded by earlier processes.
func (c *Coordinator) Runs() ([]types.Run, error) {
	if c.store != nil {
		return c.store.ListRuns()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	runs := make([]types.Run, 0, len(c.order))
	for _, id := range c.order {
		runs = append(runs, *c.runs[id])
	}
	return runs, nil
}
