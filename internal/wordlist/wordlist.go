// Package wordlist streams candidate passwords from a newline-delimited
// file. One Source is shared by all workers; Next hands out each usable
// line exactly once, in file order, without loading the list into
// memory.
package wordlist

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// large lines happen in real wordlists; mirror a generous scanner cap
const (
	initialBuf = 64 * 1024
	maxLine    = 50 * 1024 * 1024
)

// Source is a lazy, finite stream of candidates with an exclusive-claim
// cursor. Empty lines are skipped; duplicates are handed out as given.
type Source struct {
	mu   sync.Mutex
	f    *os.File
	sc   *bufio.Scanner
	err  error
	done bool
}

// Open opens the wordlist at path. An unreadable file is a startup
// failure for the whole run.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, initialBuf), maxLine)
	return &Source{f: f, sc: sc}, nil
}

// Next claims the next candidate. The second return is false once the
// stream is exhausted or a read error occurred (see Err). Safe for
// concurrent use; no candidate is ever handed to two callers.
func (s *Source) Next() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done {
		return "", false
	}
	for s.sc.Scan() {
		line := strings.TrimRight(s.sc.Text(), "\r")
		if line == "" {
			continue
		}
		return line, true
	}
	s.done = true
	s.err = s.sc.Err()
	return "", false
}

// Err reports a read error that terminated the stream early, nil after
// a clean exhaustion.
func (s *Source) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Source) Close() error {
	return s.f.Close()
}

// Count pre-counts usable lines for the progress display. Best effort:
// the engine never depends on it.
func Count(path string) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, initialBuf), maxLine)
	var n int64
	for sc.Scan() {
		if strings.TrimRight(sc.Text(), "\r") != "" {
			n++
		}
	}
	return n, sc.Err()
}
