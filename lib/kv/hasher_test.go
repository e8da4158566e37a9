//go:build go1.22
// +build go1.22

package kv

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasherDeterministicPerSeed(t *testing.T) {
	h := newHasher[string]()
	for i := 0; i < 100; i++ {
		key := "key-" + strconv.Itoa(i)
		require.Equal(t, h.Hash(key), h.Hash(key))
	}
}

func TestSeedHasherChangesDistribution(t *testing.T) {
	base := newHasher[uint64]()
	reseeded := newSeedHasher[uint64](base)

	diff := 0
	for i := uint64(0); i < 1000; i++ {
		if base.Hash(i) != reseeded.Hash(i) {
			diff++
		}
	}
	// Seeds differ, an overwhelming share of keys must hash apart.
	require.Greater(t, diff, 990)
}

func TestHasherSpreadsLowBits(t *testing.T) {
	h := newHasher[uint64]()
	buckets := make(map[uint32]int, 8)
	for i := uint64(0); i < 8000; i++ {
		hi, _ := splitHash(h.Hash(i))
		buckets[probeStart(hi, 8)]++
	}
	require.Equal(t, 8, len(buckets))
	for _, n := range buckets {
		require.Greater(t, n, 500)
	}
}
