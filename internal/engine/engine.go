// Package engine runs the brute-force search: a pool of workers
// claiming candidates from a shared stream, a set-once stop flag, and a
// set-at-most-once found-credential slot.
package engine

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"brutefile/internal/validator"
	"brutefile/internal/wordlist"
)

// ErrInterrupted reports a run cut short by the user.
var ErrInterrupted = errors.New("interrupted")

// Result classifies how a run ended.
type Result int

const (
	Found Result = iota
	Exhausted
	Aborted
)

// Outcome is the final state of one run. Attempts counts validator
// invocations actually started.
type Outcome struct {
	Result     Result
	Credential string
	Attempts   int64
	Elapsed    time.Duration
	Reason     error
}

// Options configures a run.
type Options struct {
	// Workers is the pool size; values below 1 mean single-threaded.
	Workers int

	// StatsInterval enables the progress monitor when positive.
	StatsInterval time.Duration

	// Total is the candidate-count estimate for progress display;
	// zero means unknown. Never correctness-relevant.
	Total int64

	// Interrupt, when closed, winds the run down like a stop signal.
	Interrupt <-chan struct{}

	// Skip filters candidates already handled by a previous session.
	// Skipped candidates are not counted as attempts.
	Skip func(candidate string) bool

	// Mark records a definitively failed candidate for session resume.
	Mark func(candidate string)

	Log *zap.SugaredLogger
}

// runState is the only state shared across workers.
type runState struct {
	attempts    atomic.Int64
	stop        chan struct{}
	stopOnce    sync.Once
	foundOnce   sync.Once
	foundSet    atomic.Bool
	credential  string
	interrupted atomic.Bool

	mu       sync.Mutex
	firstErr error
	retired  int
}

func newRunState() *runState {
	return &runState{stop: make(chan struct{})}
}

func (st *runState) closeStop() {
	st.stopOnce.Do(func() { close(st.stop) })
}

// setFound writes the found slot; first writer wins, later successes
// are discarded.
func (st *runState) setFound(candidate string) {
	st.foundOnce.Do(func() {
		st.credential = candidate
		st.foundSet.Store(true)
		st.closeStop()
	})
}

func (st *runState) retire(err error) {
	st.mu.Lock()
	if st.firstErr == nil {
		st.firstErr = err
	}
	st.retired++
	st.mu.Unlock()
}

// Run searches src for a candidate accepted by val.
//
// With one worker the earliest match in wordlist order is returned and
// attempts equal its 1-based position. With more workers every
// candidate is still claimed exactly once, but a later-ordered
// candidate validated faster may win the race to the found slot; that
// is an accepted semantic of parallel search. An in-flight attempt
// runs to completion after the stop flag is set.
func Run(src *wordlist.Source, val validator.Validator, opts Options) Outcome {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	st := newRunState()
	start := time.Now()

	stopMonitor := startMonitor(st, opts, start)

	if workers == 1 {
		workerLoop(st, src, val, opts)
	} else {
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				workerLoop(st, src, val, opts)
			}()
		}
		wg.Wait()
	}

	st.closeStop()
	stopMonitor()

	out := Outcome{
		Attempts: st.attempts.Load(),
		Elapsed:  time.Since(start),
	}
	st.mu.Lock()
	allRetired := st.retired == workers
	firstErr := st.firstErr
	st.mu.Unlock()

	switch {
	case st.foundSet.Load():
		out.Result = Found
		out.Credential = st.credential
	case allRetired:
		out.Result = Aborted
		out.Reason = firstErr
	case st.interrupted.Load():
		out.Result = Aborted
		out.Reason = ErrInterrupted
	case src.Err() != nil:
		out.Result = Aborted
		out.Reason = src.Err()
	default:
		out.Result = Exhausted
	}
	return out
}

// workerLoop claims and validates candidates until stop, exhaustion,
// success, or a structural error.
func workerLoop(st *runState, src *wordlist.Source, val validator.Validator, opts Options) {
	for {
		select {
		case <-st.stop:
			return
		default:
		}
		// interrupts are observed before claiming, never mid-attempt
		if opts.Interrupt != nil {
			select {
			case <-opts.Interrupt:
				st.interrupted.Store(true)
				st.closeStop()
				return
			default:
			}
		}

		candidate, ok := src.Next()
		if !ok {
			return
		}
		if opts.Skip != nil && opts.Skip(candidate) {
			continue
		}

		st.attempts.Add(1)
		err := val.Attempt(candidate)
		switch {
		case err == nil:
			st.setFound(candidate)
			return
		case errors.Is(err, validator.ErrWrongPassword):
			if opts.Mark != nil {
				opts.Mark(candidate)
			}
		default:
			var sErr *validator.StructuralError
			if errors.As(err, &sErr) {
				st.retire(err)
				return
			}
			// transient, candidate counts as failed
			if opts.Log != nil {
				opts.Log.Debugw("transient validation error", "error", err)
			}
		}
	}
}
