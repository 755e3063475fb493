package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
)

// DefaultThreadTimeout is how long a worker may go without starting an
// iteration before it is reported as stalled.
const DefaultThreadTimeout = 10 * time.Second

// Callback runs one fuzzing iteration. local is owned by the calling worker
// and persists across its iterations; global is shared by all workers and
// must be synchronized by the caller. A non-nil error marks the iteration
// as failed.
type Callback[L, G any] func(e *Engine, local *L, global *G) error

// Failure describes a failed iteration.
type Failure struct {
	Worker     int
	ThreadSeed uint64
	Iteration  uint64
	Mode       m.MutationMode
	Err        error
}

// Driver runs a callback on a fixed number of workers, each with its own
// Engine. Iterations are numbered globally; the engine of the worker that
// claims iteration i is reseeded with threadSeed+i first.
type Driver[L, G any] struct {
	threads       int
	seed          uint64
	reproduce     bool
	start, end    uint64
	maxIterations uint64
	threadTimeout time.Duration
	global        *G
	onFailure     func(Failure)

	next       atomic.Uint64
	completed  atomic.Uint64
	failed     atomic.Uint64
	exit       atomic.Bool
	heartbeats []atomic.Int64

	group *errgroup.Group
}

// NewDriver returns a driver for threads workers with a random seed.
func NewDriver[L, G any](threads int) *Driver[L, G] {
	threads = max(1, threads)

	return &Driver[L, G]{
		threads:       threads,
		seed:          rand.Uint64(),
		threadTimeout: DefaultThreadTimeout,
		heartbeats:    make([]atomic.Int64, threads),
	}
}

// Threads returns the worker count.
func (d *Driver[L, G]) Threads() int {
	return d.threads
}

// SetSeed sets the root seed from which worker seeds are derived.
func (d *Driver[L, G]) SetSeed(seed uint64) {
	d.seed = seed
}

// Seed returns the root seed.
func (d *Driver[L, G]) Seed() uint64 {
	return d.seed
}

// SetToReproduceMode replays only iterations [start, end).
func (d *Driver[L, G]) SetToReproduceMode(start, end uint64) {
	d.reproduce = true
	d.start, d.end = start, end
}

// IsReproducing reports whether the driver replays a fixed range.
func (d *Driver[L, G]) IsReproducing() bool {
	return d.reproduce
}

// SetMaxIterations stops the run after n iterations. Zero means no limit.
func (d *Driver[L, G]) SetMaxIterations(n uint64) {
	d.maxIterations = n
}

// SetGlobalState sets the state shared by all workers.
func (d *Driver[L, G]) SetGlobalState(global *G) {
	d.global = global
}

// GlobalState returns the shared state.
func (d *Driver[L, G]) GlobalState() *G {
	return d.global
}

// SetThreadTimeout sets the stall threshold.
func (d *Driver[L, G]) SetThreadTimeout(timeout time.Duration) {
	d.threadTimeout = timeout
}

// OnFailure registers fn to be called, from the failing worker, for every
// failed iteration.
func (d *Driver[L, G]) OnFailure(fn func(Failure)) {
	d.onFailure = fn
}

// NumIterations returns how many iterations have completed.
func (d *Driver[L, G]) NumIterations() uint64 {
	return d.completed.Load()
}

// NumFailedIterations returns how many iterations have failed.
func (d *Driver[L, G]) NumFailedIterations() uint64 {
	return d.failed.Load()
}

// Start launches the workers. Use Join to wait for them.
func (d *Driver[L, G]) Start(ctx context.Context, callback Callback[L, G]) {
	if d.reproduce {
		d.next.Store(d.start)
	}

	root := rand.New(rand.NewPCG(d.seed, d.seed^pcgIncrement))
	group, groupCtx := errgroup.WithContext(ctx)
	d.group = group

	now := time.Now().UnixNano()

	for i := range d.threads {
		threadSeed := root.Uint64()
		d.heartbeats[i].Store(now)

		group.Go(func() error {
			return d.work(groupCtx, i, threadSeed, callback)
		})
	}

	slog.Debug("Started fuzzing workers", "threads", d.threads, "seed", d.seed, "reproduce", d.reproduce)
}

// SignalExit asks workers to stop after their current iteration.
func (d *Driver[L, G]) SignalExit() {
	d.exit.Store(true)
}

// Join waits for all workers to exit.
func (d *Driver[L, G]) Join() error {
	if d.group == nil {
		return nil
	}

	if err := d.group.Wait(); err != nil {
		return fmt.Errorf("fuzzing workers: %w", err)
	}

	return nil
}

// CheckForStalledWorkers reports whether any running worker has not started
// an iteration within the thread timeout.
func (d *Driver[L, G]) CheckForStalledWorkers() bool {
	now := time.Now()
	stalled := false

	for i := range d.heartbeats {
		last := d.heartbeats[i].Load()
		if last == 0 {
			continue
		}

		if idle := now.Sub(time.Unix(0, last)); idle > d.threadTimeout {
			slog.Error("Worker has stalled", "worker", i, "idle", idle)

			stalled = true
		}
	}

	return stalled
}

// claim reserves the next iteration number.
func (d *Driver[L, G]) claim() (uint64, bool) {
	for {
		if d.exit.Load() {
			return 0, false
		}

		it := d.next.Load()

		if d.reproduce && it >= d.end {
			return 0, false
		}

		if d.maxIterations > 0 && it-d.start >= d.maxIterations {
			return 0, false
		}

		if d.next.CompareAndSwap(it, it+1) {
			return it, true
		}
	}
}

func (d *Driver[L, G]) work(ctx context.Context, worker int, threadSeed uint64, callback Callback[L, G]) error {
	// a finished worker is never stalled
	defer d.heartbeats[worker].Store(0)

	e := NewEngine(threadSeed)

	var local L

	for ctx.Err() == nil {
		it, ok := d.claim()
		if !ok {
			slog.Debug("Worker exiting", "worker", worker)
			return nil
		}

		d.heartbeats[worker].Store(time.Now().UnixNano())

		e.Reseed(threadSeed + it)
		e.BeginNewIteration()

		mode := e.Mode()
		if err := callback(e, &local, d.global); err != nil {
			d.failed.Add(1)
			slog.Error("Iteration failed", "worker", worker, "iteration", it, "error", err)

			if d.onFailure != nil {
				d.onFailure(Failure{
					Worker:     worker,
					ThreadSeed: threadSeed,
					Iteration:  it,
					Mode:       mode,
					Err:        err,
				})
			}
		}

		d.completed.Add(1)
	}

	return nil
}
