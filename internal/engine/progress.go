package engine

import (
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// startMonitor launches the progress reporter and returns a function
// that stops it and waits for it to finish. The monitor only reads the
// shared atomic attempt counter; it never blocks a worker.
func startMonitor(st *runState, opts Options, start time.Time) func() {
	if opts.StatsInterval <= 0 {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})

	var bar *pb.ProgressBar
	if opts.Total > 0 && term.IsTerminal(int(os.Stderr.Fd())) {
		bar = pb.Full.New(int(opts.Total))
		bar.SetWriter(os.Stderr)
		bar.SetRefreshRate(time.Second)
		bar.Start()
	}

	go func() {
		defer close(finished)
		ticker := time.NewTicker(opts.StatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				if bar != nil {
					bar.SetCurrent(st.attempts.Load())
					bar.Finish()
				}
				return
			case <-ticker.C:
				attempts := st.attempts.Load()
				if bar != nil {
					bar.SetCurrent(attempts)
					continue
				}
				if opts.Log != nil {
					elapsed := time.Since(start)
					fields := []any{
						"attempts", attempts,
						"elapsed", elapsed.Round(time.Second).String(),
						"rate", rate(attempts, elapsed),
					}
					if opts.Total > 0 {
						fields = append(fields, "remaining", opts.Total-attempts)
					}
					opts.Log.Infow("progress", fields...)
				}
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func rate(attempts int64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(attempts) / secs
}
