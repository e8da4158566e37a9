package kv

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatMapPutGet(t *testing.T) {
	m := NewFlatMap[uint64, string](16)
	for i := uint64(0); i < 100; i++ {
		require.NoError(t, m.Put(i, strconv.FormatUint(i, 10)))
	}
	require.Equal(t, int64(100), m.Len())

	for i := uint64(0); i < 100; i++ {
		v, exists := m.Get(i)
		require.True(t, exists)
		require.Equal(t, strconv.FormatUint(i, 10), v)
	}
	_, exists := m.Get(1000)
	require.False(t, exists)
}

func TestFlatMapPutUpdateInPlace(t *testing.T) {
	m := NewFlatMap[string, int](8)
	require.NoError(t, m.Put("abc", 1))
	require.NoError(t, m.Put("abc", 2))
	require.Equal(t, int64(1), m.Len())

	v, exists := m.Get("abc")
	require.True(t, exists)
	require.Equal(t, 2, v)
}

func TestFlatMapDelete(t *testing.T) {
	m := NewFlatMap[uint64, uint64](32)
	for i := uint64(0); i < 64; i++ {
		require.NoError(t, m.Put(i, i*10))
	}

	v, deleted := m.Delete(7)
	require.True(t, deleted)
	require.Equal(t, uint64(70), v)
	require.Equal(t, int64(63), m.Len())

	_, exists := m.Get(7)
	require.False(t, exists)

	_, deleted = m.Delete(7)
	require.False(t, deleted)
	_, deleted = m.Delete(1 << 40)
	require.False(t, deleted)
}

func TestFlatMapDeleteThenReinsert(t *testing.T) {
	m := NewFlatMap[uint64, uint64](16)
	for i := uint64(0); i < 32; i++ {
		require.NoError(t, m.Put(i, i))
	}
	for i := uint64(0); i < 32; i += 2 {
		_, deleted := m.Delete(i)
		require.True(t, deleted)
	}
	require.Equal(t, int64(16), m.Len())

	// Tombstones must not shadow the survivors nor the reinserts.
	for i := uint64(1); i < 32; i += 2 {
		_, exists := m.Get(i)
		require.True(t, exists)
	}
	for i := uint64(0); i < 32; i += 2 {
		require.NoError(t, m.Put(i, i+100))
	}
	require.Equal(t, int64(32), m.Len())
	v, exists := m.Get(30)
	require.True(t, exists)
	require.Equal(t, uint64(130), v)
}

func TestFlatMapGrowBeyondInitialCapacity(t *testing.T) {
	m := NewFlatMap[uint64, uint64](2)
	const n = 10_000
	for i := uint64(0); i < n; i++ {
		require.NoError(t, m.Put(i, i))
	}
	require.Equal(t, int64(n), m.Len())
	for i := uint64(0); i < n; i++ {
		v, exists := m.Get(i)
		require.True(t, exists)
		require.Equal(t, i, v)
	}
}

func TestFlatMapForeach(t *testing.T) {
	m := NewFlatMap[uint64, uint64](16)
	for i := uint64(0); i < 50; i++ {
		require.NoError(t, m.Put(i, i))
	}

	seen := make(map[uint64]struct{}, 50)
	m.Foreach(func(i uint64, key, val uint64) bool {
		require.Equal(t, key, val)
		_, dup := seen[key]
		require.False(t, dup)
		seen[key] = struct{}{}
		return true
	})
	require.Equal(t, 50, len(seen))
}

func TestFlatMapForeachEarlyStop(t *testing.T) {
	m := NewFlatMap[uint64, uint64](16)
	for i := uint64(0); i < 50; i++ {
		require.NoError(t, m.Put(i, i))
	}
	count := 0
	m.Foreach(func(i uint64, key, val uint64) bool {
		count++
		return count < 10
	})
	require.Equal(t, 10, count)
}

func TestFlatMapClear(t *testing.T) {
	m := NewFlatMap[string, int](8)
	for i := 0; i < 20; i++ {
		require.NoError(t, m.Put(fmt.Sprintf("key-%d", i), i))
	}
	m.Clear()
	require.Equal(t, int64(0), m.Len())
	_, exists := m.Get("key-3")
	require.False(t, exists)

	require.NoError(t, m.Put("key-3", 33))
	v, exists := m.Get("key-3")
	require.True(t, exists)
	require.Equal(t, 33, v)
}

func TestFlatMapMigrateFrom(t *testing.T) {
	src := make(map[string]int, 64)
	for i := 0; i < 64; i++ {
		src[strconv.Itoa(i)] = i
	}
	m := NewFlatMap[string, int](8)
	require.NoError(t, m.MigrateFrom(src))
	require.Equal(t, int64(64), m.Len())
	for k, v := range src {
		got, exists := m.Get(k)
		require.True(t, exists)
		require.Equal(t, v, got)
	}
}

func TestFlatMapCalcGroups(t *testing.T) {
	testcases := []struct {
		size   uint32
		expect uint32
	}{
		{size: 0, expect: 1},
		{size: 1, expect: 1},
		{size: 7, expect: 1},
		{size: 8, expect: 2},
		{size: 56, expect: 8},
		{size: 57, expect: 16},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("size-%d", tc.size), func(tt *testing.T) {
			groups := calcGroups(tc.size)
			assert.Equal(tt, tc.expect, groups)
			assert.Zero(tt, groups&(groups-1))
		})
	}
}

func TestFlatMapMetadataMatch(t *testing.T) {
	var md flatMapMetadata
	for i := range md {
		md[i] = empty
	}
	require.NotZero(t, metadataMatchEmpty(&md))
	require.Zero(t, metadataMatchH2(&md, h2(0x35)))

	md[2] = 0x35
	bs := metadataMatchH2(&md, h2(0x35))
	require.NotZero(t, bs)
	require.Equal(t, uint32(2), nextMatch(&bs))
	require.Zero(t, bs)
}

func BenchmarkFlatMapPut(b *testing.B) {
	m := NewFlatMap[uint64, uint64](uint32(b.N))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Put(uint64(i), uint64(i))
	}
}

func BenchmarkFlatMapGet(b *testing.B) {
	const n = 1 << 16
	m := NewFlatMap[uint64, uint64](n)
	for i := uint64(0); i < n; i++ {
		_ = m.Put(i, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(uint64(i) & (n - 1))
	}
}
