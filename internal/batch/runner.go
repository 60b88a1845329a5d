// ABOUTME: Batch runner
// ABOUTME: Locks the output root and runs steps concurrently with errgroup
package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/shadow-worker/soundgen/pkg/audio"
	"golang.org/x/sync/errgroup"
)

// LockFileName is created in the output root while a batch runs
const LockFileName = ".soundgen.lock"

// ErrLocked reports that another batch holds the output root
var ErrLocked = errors.New("output root is locked by another run")

// ErrStepPanic marks a step that panicked instead of returning an error
var ErrStepPanic = errors.New("step panicked")

// Observer receives step progress. Callbacks run on worker goroutines.
type Observer interface {
	StepStarted(name string)
	StepFinished(result Result)
}

// Config holds runner configuration
type Config struct {
	OutputRoot string
	Workers    int
	Debug      bool
	Observer   Observer
}

// Runner executes batches of steps
type Runner struct {
	config Config
}

// NewRunner creates a runner. A non-positive worker count uses one
// worker per CPU.
func NewRunner(config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	return &Runner{config: config}
}

// Run attempts every step and returns a report in step order. The error
// is non-nil only when the batch could not start at all; step failures
// are in the report.
func (r *Runner) Run(ctx context.Context, steps []Step) (*Report, error) {
	if err := checkNames(steps); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.config.OutputRoot, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create output root %s: %v", audio.ErrIO, r.config.OutputRoot, err)
	}

	lockPath := filepath.Join(r.config.OutputRoot, LockFileName)
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lockPath)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Printf("Failed to release lock %s: %v", lockPath, err)
		}
	}()

	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Results: make([]Result, len(steps)),
	}
	log.Printf("Batch %s: %d steps, %d workers, output %s", report.RunID, len(steps), r.config.Workers, r.config.OutputRoot)

	var g errgroup.Group
	g.SetLimit(r.config.Workers)
	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			report.Results[i] = r.runStep(ctx, step)
			return nil
		})
	}
	_ = g.Wait()

	report.Elapsed = time.Since(report.Started)
	if failed := report.Failed(); len(failed) > 0 {
		log.Printf("Batch %s: %d of %d steps failed", report.RunID, len(failed), len(steps))
	} else {
		log.Printf("Batch %s: all %d steps succeeded in %v", report.RunID, len(steps), report.Elapsed.Round(time.Millisecond))
	}
	return report, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) Result {
	name := step.Name()
	if r.config.Observer != nil {
		r.config.Observer.StepStarted(name)
	}
	if r.config.Debug {
		log.Printf("Starting %s", name)
	}

	start := time.Now()
	output, err := runIsolated(ctx, step)
	result := Result{
		Name:    name,
		Output:  output,
		Err:     err,
		Elapsed: time.Since(start),
	}

	if err != nil {
		log.Printf("Failed to generate %s: %v", name, err)
	} else {
		log.Printf("Generated %s: %s", name, output)
	}

	if r.config.Observer != nil {
		r.config.Observer.StepFinished(result)
	}
	return result
}

// runIsolated turns a panicking step into a failed result so sibling
// steps keep running
func runIsolated(ctx context.Context, step Step) (output string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %v", ErrStepPanic, p)
		}
	}()
	return step.Run(ctx)
}

func checkNames(steps []Step) error {
	seen := make(map[string]bool, len(steps))
	for _, s := range steps {
		name := s.Name()
		if name == "" {
			return errors.New("batch step has an empty name")
		}
		if seen[name] {
			return fmt.Errorf("duplicate batch step %q", name)
		}
		seen[name] = true
	}
	return nil
}
