package domain

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"wirefuzz.dev/pkg/wirefuzz/internal/adapter"
	"wirefuzz.dev/pkg/wirefuzz/internal/controller"
	m "wirefuzz.dev/pkg/wirefuzz/internal/model"
	"wirefuzz.dev/pkg/wirefuzz/pkg/spill"
)

// DefaultProgressInterval is how often a running campaign reports progress.
const DefaultProgressInterval = time.Second

// CampaignArgs configures a fuzzing campaign.
type CampaignArgs struct {
	Schema string
	Type   Type
	// Order is the wire byte order. Nil means little endian.
	Order   binary.AppendByteOrder
	Threads int
	// Seed is the root seed. Nil picks a random one.
	Seed *uint64
	// Iterations stops the campaign after that many iterations. Zero runs
	// until the context is canceled.
	Iterations uint64
	// MaxSize is the byte budget of every payload. Zero means unlimited.
	MaxSize          int
	ThreadTimeout    time.Duration
	ProgressInterval time.Duration
	Target           string
	SpillDir         string
}

// GenerateArgs configures a batch of freshly generated payloads.
type GenerateArgs struct {
	Type    Type
	Order   binary.AppendByteOrder
	Seed    uint64
	Count   int
	MaxSize int
}

// ReproduceArgs configures the replay of a single-worker campaign.
type ReproduceArgs struct {
	Schema  string
	Type    Type
	Order   binary.AppendByteOrder
	Seed    uint64
	Range   m.IterationRange
	MaxSize int
	// Send delivers the replayed payloads to the target again.
	Send bool
	// Expected maps iterations to recorded payloads that the replay must match.
	Expected map[uint64][]byte
}

// Replayed is one reproduced iteration.
type Replayed struct {
	Iteration uint64
	Payload   []byte
	Err       error
}

// Status reports whether the replayed iteration was delivered.
func (r Replayed) Status() m.IterationStatus {
	if r.Err != nil {
		return m.Failed
	}

	return m.Passed
}

// Workflow runs fuzzing campaigns against a target.
type Workflow interface {
	Run(ctx context.Context, args CampaignArgs) (m.CampaignStats, error)
	Generate(args GenerateArgs) [][]byte
	Reproduce(ctx context.Context, args ReproduceArgs) ([]Replayed, error)
}

type workflow struct {
	adapter.TargetAdapter
	adapter.CrashStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	target adapter.TargetAdapter,
	crashStore adapter.CrashStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		TargetAdapter: target,
		CrashStore:    crashStore,
		UI:            ui,
	}
}

// worker holds the corpus item a worker keeps mutating.
type worker struct {
	base      Value
	iteration uint64
}

// totals is shared by all workers of a campaign.
type totals struct {
	bytes atomic.Uint64
}

// deliveryError carries the payload of a failed iteration to the failure hook.
type deliveryError struct {
	payload []byte
	err     error
}

func (d *deliveryError) Error() string { return d.err.Error() }

func (d *deliveryError) Unwrap() error { return d.err }

// failureRecord is the spilled form of a failed iteration.
type failureRecord struct {
	Worker     int
	ThreadSeed uint64
	Iteration  uint64
	Mode       string
	Err        string
	Payload    []byte
	Timestamp  time.Time
}

func budgetFor(maxSize int) *m.Constraints[int] {
	if maxSize <= 0 {
		return nil
	}

	return m.NewConstraints[int]().WithMaxSize(maxSize)
}

// nextValue produces the value of one iteration. The first iteration of a
// worker generates the corpus item. Havoc keeps mutating it in place, while
// the deterministic modes mutate a copy so every step starts from the item.
func nextValue(e *Engine, typ Type, w *worker, c *m.Constraints[int]) Value {
	if w.base == nil {
		e.BeginNewCorpus()
		w.base = typ.Generate(e, c)

		return w.base
	}

	if e.Mode().IsHavoc() {
		typ.Mutate(e, w.base, c)
		return w.base
	}

	v := w.base.Clone()
	typ.Mutate(e, v, c)

	return v
}

func (w *workflow) Run(ctx context.Context, args CampaignArgs) (m.CampaignStats, error) {
	if args.Type == nil {
		return m.CampaignStats{}, fmt.Errorf("run %q: %w", args.Schema, m.ErrUnknownSchema)
	}

	if err := w.Start(ctx, controller.WithCampaignMode()); err != nil {
		return m.CampaignStats{}, fmt.Errorf("start ui: %w", err)
	}

	// the summary is still shown after the campaign was canceled
	uiCtx := context.WithoutCancel(ctx)
	defer w.UI.Close(uiCtx)

	failures, err := spill.New[failureRecord](args.SpillDir)
	if err != nil {
		return m.CampaignStats{}, fmt.Errorf("create failure spill: %w", err)
	}

	defer func() {
		if err := failures.Remove(); err != nil {
			slog.Warn("Failed to remove failure spill", "path", failures.Path(), "error", err)
		}
	}()

	driver := NewDriver[worker, totals](args.Threads)
	if args.Seed != nil {
		driver.SetSeed(*args.Seed)
	}

	if args.ThreadTimeout > 0 {
		driver.SetThreadTimeout(args.ThreadTimeout)
	}

	driver.SetMaxIterations(args.Iterations)
	driver.SetGlobalState(&totals{})
	driver.OnFailure(func(f Failure) {
		record := failureRecord{
			Worker:     f.Worker,
			ThreadSeed: f.ThreadSeed,
			Iteration:  f.Iteration,
			Mode:       f.Mode.String(),
			Err:        f.Err.Error(),
			Timestamp:  time.Now().UTC(),
		}

		var delivery *deliveryError
		if errors.As(f.Err, &delivery) {
			record.Payload = delivery.payload
		}

		if err := failures.Append(record); err != nil {
			slog.Error("Failed to record failing iteration", "iteration", f.Iteration, "error", err)
		}
	})

	w.DisplayCampaignInfo(ctx, m.CampaignInfo{
		Schema:  args.Schema,
		Target:  args.Target,
		Threads: driver.Threads(),
		Seed:    driver.Seed(),
		MaxSize: args.MaxSize,
	})

	c := budgetFor(args.MaxSize)
	begin := time.Now()

	driver.Start(ctx, func(e *Engine, local *worker, global *totals) error {
		payload := Serialize(nextValue(e, args.Type, local, c), args.Order)
		global.bytes.Add(uint64(len(payload)))

		if err := w.Send(ctx, payload); err != nil {
			return &deliveryError{payload: payload, err: err}
		}

		return nil
	})

	stats := func() m.CampaignStats {
		return m.CampaignStats{
			Schema:     args.Schema,
			Threads:    driver.Threads(),
			Seed:       driver.Seed(),
			Iterations: driver.NumIterations(),
			Failed:     driver.NumFailedIterations(),
			Bytes:      driver.GlobalState().bytes.Load(),
			Elapsed:    time.Since(begin),
		}
	}

	stalled := w.reportProgress(ctx, driver, args.ProgressInterval, stats)

	joinErr := driver.Join()
	stalled()

	final := stats()

	if err := w.persistFailures(uiCtx, args, driver.Seed(), failures); err != nil {
		return final, err
	}

	w.DisplaySummary(uiCtx, final)
	w.Wait(uiCtx)

	slog.Debug("Campaign finished", "schema", args.Schema, "iterations", final.Iterations, "failed", final.Failed)

	if joinErr != nil {
		return final, joinErr
	}

	return final, nil
}

// reportProgress displays progress until the returned stop func is called.
func (w *workflow) reportProgress(
	ctx context.Context,
	driver *Driver[worker, totals],
	interval time.Duration,
	stats func() m.CampaignStats,
) func() {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	done := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				current := stats()
				current.Stalled = driver.CheckForStalledWorkers()
				w.DisplayProgress(ctx, current)
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
	}
}

func (w *workflow) persistFailures(ctx context.Context, args CampaignArgs, seed uint64, failures spill.Spill[failureRecord]) error {
	err := failures.Range(func(_ uint64, record failureRecord) error {
		crash := m.Crash{
			Schema:     args.Schema,
			Seed:       seed,
			ThreadSeed: record.ThreadSeed,
			Iteration:  record.Iteration,
			Threads:    max(1, args.Threads),
			MaxSize:    args.MaxSize,
			Mode:       record.Mode,
			Error:      record.Err,
			Timestamp:  record.Timestamp,
			Payload:    record.Payload,
		}

		path, err := w.SaveCrash(crash)
		if err != nil {
			return fmt.Errorf("save crash %d: %w", record.Iteration, err)
		}

		w.DisplayFailure(ctx, crash, path)

		return nil
	})
	if err != nil {
		return fmt.Errorf("persist failures: %w", err)
	}

	return nil
}

func (w *workflow) Generate(args GenerateArgs) [][]byte {
	e := NewEngine(args.Seed)
	c := budgetFor(args.MaxSize)
	out := make([][]byte, 0, args.Count)

	for i := range args.Count {
		e.Reseed(args.Seed + uint64(i))
		e.BeginNewCorpus()

		out = append(out, Serialize(args.Type.Generate(e, c), args.Order))
	}

	return out
}

// Reproduce replays a campaign on one worker. The worker carries state from
// iteration to iteration, so it runs from iteration 0 and only the requested
// range is reported.
func (w *workflow) Reproduce(ctx context.Context, args ReproduceArgs) ([]Replayed, error) {
	if args.Type == nil {
		return nil, fmt.Errorf("reproduce %q: %w", args.Schema, m.ErrUnknownSchema)
	}

	if err := w.Start(ctx, controller.WithReproduceMode()); err != nil {
		return nil, fmt.Errorf("start ui: %w", err)
	}

	uiCtx := context.WithoutCancel(ctx)
	defer w.UI.Close(uiCtx)

	w.DisplayCampaignInfo(ctx, m.CampaignInfo{
		Schema:  args.Schema,
		Threads: 1,
		Seed:    args.Seed,
		MaxSize: args.MaxSize,
		Range:   &args.Range,
	})

	var (
		mu       sync.Mutex
		replayed []Replayed
	)

	driver := NewDriver[worker, totals](1)
	driver.SetSeed(args.Seed)
	driver.SetToReproduceMode(0, args.Range.End)
	driver.SetGlobalState(&totals{})

	c := budgetFor(args.MaxSize)

	driver.Start(ctx, func(e *Engine, local *worker, global *totals) error {
		it := local.iteration
		local.iteration++

		payload := Serialize(nextValue(e, args.Type, local, c), args.Order)
		if !args.Range.Contains(it) {
			return nil
		}

		global.bytes.Add(uint64(len(payload)))

		var sendErr error
		if args.Send {
			sendErr = w.Send(ctx, payload)
		}

		mu.Lock()
		replayed = append(replayed, Replayed{Iteration: it, Payload: payload, Err: sendErr})
		mu.Unlock()

		return sendErr
	})

	if err := driver.Join(); err != nil {
		return replayed, err
	}

	w.DisplaySummary(uiCtx, m.CampaignStats{
		Schema:     args.Schema,
		Threads:    1,
		Seed:       args.Seed,
		Iterations: uint64(len(replayed)),
		Failed:     driver.NumFailedIterations(),
		Bytes:      driver.GlobalState().bytes.Load(),
	})
	w.Wait(uiCtx)

	for _, r := range replayed {
		want, ok := args.Expected[r.Iteration]
		if !ok {
			continue
		}

		if diff := payloadDiff(want, r.Payload); diff != "" {
			return replayed, fmt.Errorf("iteration %d: %w\n%s", r.Iteration, m.ErrReproduceMismatch, diff)
		}
	}

	return replayed, nil
}

// payloadDiff returns a unified diff of the hex dumps of want and got, or
// the empty string when they are equal.
func payloadDiff(want, got []byte) string {
	a, b := hex.Dump(want), hex.Dump(got)
	if a == b {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "recorded",
		ToFile:   "replayed",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("recorded:\n%sreplayed:\n%s", a, b)
	}

	return diff
}
