package engine

import (
	"fmt"
	"io"
)

// Process exit codes. Each terminal state gets a distinct code so
// scripts can branch on the result without parsing output.
const (
	ExitFound     = 0
	ExitUsage     = 1
	ExitExhausted = 2
	ExitAborted   = 3
)

// Report writes the user-facing result for a finished run and returns
// the process exit code.
func Report(w io.Writer, target string, out Outcome) int {
	switch out.Result {
	case Found:
		fmt.Fprintf(w, "SUCCESS: password found for %s\n", target)
		fmt.Fprintf(w, "Password: %s\n", out.Credential)
		fmt.Fprintf(w, "Attempts: %d\n", out.Attempts)
		fmt.Fprintf(w, "Time: %.2fs (%.1f attempts/sec)\n", out.Elapsed.Seconds(), rate(out.Attempts, out.Elapsed))
		return ExitFound
	case Exhausted:
		fmt.Fprintf(w, "Password not found in wordlist\n")
		fmt.Fprintf(w, "Attempts: %d\n", out.Attempts)
		fmt.Fprintf(w, "Time: %.2fs (%.1f attempts/sec)\n", out.Elapsed.Seconds(), rate(out.Attempts, out.Elapsed))
		return ExitExhausted
	default:
		fmt.Fprintf(w, "Aborted: %v\n", out.Reason)
		fmt.Fprintf(w, "Attempts: %d\n", out.Attempts)
		return ExitAborted
	}
}
