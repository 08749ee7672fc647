package wordlist

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNextPreservesOrderAndSkipsEmptyLines(t *testing.T) {
	src, err := Open(writeList(t, "first\n\nsecond\r\n\r\nthird\n"))
	require.NoError(t, err)
	defer src.Close()

	var got []string
	for {
		c, ok := src.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
	assert.NoError(t, src.Err())
}

func TestNextKeepsDuplicates(t *testing.T) {
	src, err := Open(writeList(t, "dup\ndup\ndup\n"))
	require.NoError(t, err)
	defer src.Close()

	n := 0
	for {
		c, ok := src.Next()
		if !ok {
			break
		}
		assert.Equal(t, "dup", c)
		n++
	}
	assert.Equal(t, 3, n)
}

func TestNextAfterExhaustionStaysDone(t *testing.T) {
	src, err := Open(writeList(t, "only\n"))
	require.NoError(t, err)
	defer src.Close()

	_, ok := src.Next()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		_, ok = src.Next()
		assert.False(t, ok)
	}
}

func TestConcurrentClaimsAreExclusive(t *testing.T) {
	const total = 500
	content := ""
	for i := 0; i < total; i++ {
		content += "cand" + strconv.Itoa(i) + "\n"
	}
	src, err := Open(writeList(t, content))
	require.NoError(t, err)
	defer src.Close()

	var mu sync.Mutex
	claimed := make([]string, 0, total)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				c, ok := src.Next()
				if !ok {
					return
				}
				mu.Lock()
				claimed = append(claimed, c)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, claimed, total)
	sort.Strings(claimed)
	for i := 1; i < len(claimed); i++ {
		assert.NotEqual(t, claimed[i-1], claimed[i], "candidate claimed twice")
	}
}

func TestCount(t *testing.T) {
	n, err := Count(writeList(t, "a\n\nb\nc\n\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
