package id

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonotonicNonZeroID(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	require.NoError(t, err)

	prev := uint64(0)
	for i := 0; i < 10_000; i++ {
		n := gen.Number()
		require.Greater(t, n, prev)
		prev = n
	}
	require.NotEmpty(t, gen.Str())
}

func TestMonotonicNonZeroID_NoDuplicateUnderConcurrency(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	require.NoError(t, err)

	const (
		workers = 8
		perW    = 10_000
	)
	results := make([][]uint64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			local := make([]uint64, 0, perW)
			for i := 0; i < perW; i++ {
				local = append(local, gen.Number())
			}
			results[slot] = local
		}(w)
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, workers*perW)
	for _, chunk := range results {
		for _, n := range chunk {
			require.NotZero(t, n)
			_, dup := seen[n]
			require.False(t, dup)
			seen[n] = struct{}{}
		}
	}
}
